package response

import (
	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/usecase"
)

type WorkOrderResponse struct {
	ID                 int     `json:"id"`
	ClientName         string  `json:"client_name"`
	ServiceDescription string  `json:"service_description"`
	HoursWorked        float64 `json:"hours_worked"`
	HourlyRate         float64 `json:"hourly_rate"`
	TotalCost          float64 `json:"total_cost"`
	Status             string  `json:"status"`
}

func FromWorkOrder(w entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:                 w.ID,
		ClientName:         w.ClientName,
		ServiceDescription: w.ServiceDescription,
		HoursWorked:        w.HoursWorked,
		HourlyRate:         w.HourlyRate,
		TotalCost:          w.TotalCost,
		Status:             string(w.Status),
	}
}

func FromWorkOrders(orders []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromWorkOrder(o))
	}
	return out
}

type WorkOrderStatusResponse struct {
	InvoiceID          string `json:"invoice_id"`
	ClientName         string `json:"client_name"`
	Status             string `json:"status"`
	ServiceDescription string `json:"service_description"`
}

func FromWorkOrderStatus(v usecase.WorkOrderStatusView) WorkOrderStatusResponse {
	return WorkOrderStatusResponse{
		InvoiceID:          v.InvoiceID,
		ClientName:         v.ClientName,
		Status:             string(v.Status),
		ServiceDescription: v.ServiceDescription,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

const (
	MessageBatchProcessed = "Work orders processed."
	MessageBatchIdle      = "New work orders to process."
)

// AutoProcessResponse is the body of POST /autoProcess. An idle run carries only Message.
type AutoProcessResponse struct {
	Message    string                 `json:"message"`
	WorkOrders []WorkOrderResponse    `json:"workOrders,omitempty"`
	RunID      string                 `json:"run_id,omitempty"`
	Processed  int                    `json:"processed,omitempty"`
	Failed     int                    `json:"failed,omitempty"`
	Outcomes   []usecase.OrderOutcome `json:"outcomes,omitempty"`
}

func FromBatchResult(r usecase.BatchResult) AutoProcessResponse {
	if r.Idle {
		return AutoProcessResponse{Message: MessageBatchIdle}
	}
	return AutoProcessResponse{
		Message:    MessageBatchProcessed,
		WorkOrders: FromWorkOrders(r.WorkOrders),
		RunID:      r.RunID,
		Processed:  r.Processed,
		Failed:     r.Failed,
		Outcomes:   r.Outcomes,
	}
}
