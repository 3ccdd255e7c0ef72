package entities

import (
	"strconv"
	"time"
)

// WorkOrderStatus represents the lifecycle of a work order.
//
// Domain notes:
//   - Orders are seeded in "new".
//   - The batch processor is the only path that moves an order forward:
//     new -> processing -> processed | failed.
//   - processed and failed are terminal.
type WorkOrderStatus string

const (
	WorkOrderStatusNew        WorkOrderStatus = "new"
	WorkOrderStatusProcessing WorkOrderStatus = "processing"
	WorkOrderStatusProcessed  WorkOrderStatus = "processed"
	WorkOrderStatusFailed     WorkOrderStatus = "failed"
)

func (s WorkOrderStatus) IsTerminal() bool {
	return s == WorkOrderStatusProcessed || s == WorkOrderStatusFailed
}

// InvoiceIDPrefix is prepended to a work order id to derive its invoice id.
const InvoiceIDPrefix = "INV-"

// WorkOrder is a unit of billable service performed for a client.
//
// Storage model:
//   - file backend: one element of the workOrders.json array
//   - DynamoDB: PK id (number)
//
// TotalCost is what gets invoiced. It is derived from HoursWorked * HourlyRate when an
// order is created through the service; seeded orders keep whatever value they carry.
type WorkOrder struct {
	ID                 int             `json:"id"`
	ClientName         string          `json:"client_name"`
	ServiceDescription string          `json:"service_description"`
	HoursWorked        float64         `json:"hours_worked"`
	HourlyRate         float64         `json:"hourly_rate"`
	TotalCost          float64         `json:"total_cost"`
	Status             WorkOrderStatus `json:"status"`

	ProcessingStartedAt *time.Time `json:"processing_started_at,omitempty"`
}

// InvoiceID returns the invoice id derived from the order id.
func (w WorkOrder) InvoiceID() string {
	return InvoiceIDPrefix + strconv.Itoa(w.ID)
}
