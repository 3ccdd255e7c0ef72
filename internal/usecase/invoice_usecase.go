package usecase

import (
	"context"
	"time"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/domain/invoicing"
	"workorder_invoicing/internal/usecase/interfaces"
)

type IInvoiceUseCase interface {
	GenerateInvoice(ctx context.Context, workOrderID int) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo interfaces.IWorkOrderRepository
	now  func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IWorkOrderRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, now: time.Now}
}

// GenerateInvoice builds the invoice for one order. Nothing is persisted; the order's
// status is left untouched.
func (u *InvoiceUseCase) GenerateInvoice(ctx context.Context, workOrderID int) (entities.Invoice, error) {
	orders, err := u.repo.Load(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}
	for _, o := range orders {
		if o.ID == workOrderID {
			return invoicing.Generate(o, u.now()), nil
		}
	}
	return entities.Invoice{}, ErrWorkOrderNotFound
}
