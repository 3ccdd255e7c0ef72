package entities

import "time"

// Category is the coarse service classification attached to an invoice.
type Category string

const (
	CategoryMaintenance    Category = "Maintenance"
	CategoryRepair         Category = "Repair"
	CategoryGeneralService Category = "General Service"
)

// Invoice is a billing document derived from a WorkOrder.
//
// Every field is a snapshot taken at generation time; an invoice is never updated.
type Invoice struct {
	InvoiceID          string    `json:"invoice_id"`
	ClientName         string    `json:"client_name"`
	ServiceDescription string    `json:"service_description"`
	AmountDue          float64   `json:"amount_due"`
	DueDate            time.Time `json:"due_date"`
	HoursWorked        float64   `json:"hours_worked"`
	HourlyRate         float64   `json:"hourly_rate"`
	Category           Category  `json:"category,omitempty"`
}
