package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/domain/invoicing"
	"workorder_invoicing/internal/usecase/interfaces"
)

var (
	ErrWorkOrderNotFound = errors.New("work order not found")
	ErrInvalidInvoiceID  = errors.New("invalid invoice id")
	ErrInvalidWorkOrder  = errors.New("invalid work order")
)

// CreateWorkOrderInput carries the client-supplied fields of a new work order.
type CreateWorkOrderInput struct {
	ClientName         string
	ServiceDescription string
	HoursWorked        float64
	HourlyRate         float64
}

// WorkOrderStatusView is what the status lookup exposes about an order.
type WorkOrderStatusView struct {
	InvoiceID          string                   `json:"invoice_id"`
	ClientName         string                   `json:"client_name"`
	Status             entities.WorkOrderStatus `json:"status"`
	ServiceDescription string                   `json:"service_description"`
}

type IWorkOrderUseCase interface {
	List(ctx context.Context) ([]entities.WorkOrder, error)
	Create(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error)
	StatusByInvoiceID(ctx context.Context, invoiceID string) (WorkOrderStatusView, error)
}

type WorkOrderUseCase struct {
	repo interfaces.IWorkOrderRepository
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo}
}

func (u *WorkOrderUseCase) List(ctx context.Context) ([]entities.WorkOrder, error) {
	return u.repo.Load(ctx)
}

// Create appends a new order with the next free id, status new and a derived total_cost.
func (u *WorkOrderUseCase) Create(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error) {
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ServiceDescription = strings.TrimSpace(in.ServiceDescription)
	if in.ClientName == "" || in.ServiceDescription == "" || in.HoursWorked <= 0 || in.HourlyRate <= 0 {
		return entities.WorkOrder{}, ErrInvalidWorkOrder
	}

	var created entities.WorkOrder
	_, err := u.repo.Update(ctx, func(orders []entities.WorkOrder) ([]entities.WorkOrder, bool, error) {
		nextID := 1
		for _, o := range orders {
			if o.ID >= nextID {
				nextID = o.ID + 1
			}
		}
		created = entities.WorkOrder{
			ID:                 nextID,
			ClientName:         in.ClientName,
			ServiceDescription: in.ServiceDescription,
			HoursWorked:        in.HoursWorked,
			HourlyRate:         in.HourlyRate,
			TotalCost:          invoicing.TotalCost(in.HoursWorked, in.HourlyRate),
			Status:             entities.WorkOrderStatusNew,
		}
		return append(orders, created), true, nil
	})
	if err != nil {
		log.Printf("[workorder][usecase] create failed client=%q err=%v", in.ClientName, err)
		return entities.WorkOrder{}, err
	}

	log.Printf("[workorder][usecase] created id=%d total_cost=%.2f", created.ID, created.TotalCost)
	return created, nil
}

func (u *WorkOrderUseCase) StatusByInvoiceID(ctx context.Context, invoiceID string) (WorkOrderStatusView, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return WorkOrderStatusView{}, ErrInvalidInvoiceID
	}

	orders, err := u.repo.Load(ctx)
	if err != nil {
		return WorkOrderStatusView{}, err
	}
	for _, o := range orders {
		if o.InvoiceID() == invoiceID {
			return WorkOrderStatusView{
				InvoiceID:          invoiceID,
				ClientName:         o.ClientName,
				Status:             o.Status,
				ServiceDescription: o.ServiceDescription,
			}, nil
		}
	}
	return WorkOrderStatusView{}, ErrWorkOrderNotFound
}
