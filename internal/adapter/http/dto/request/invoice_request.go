package request

import (
	"strings"
	"time"

	"workorder_invoicing/internal/domain/entities"
)

// InvoiceRequest is an invoice as produced by POST /generateInvoice and sent back by clients.
type InvoiceRequest struct {
	InvoiceID          string    `json:"invoice_id"`
	ClientName         string    `json:"client_name"`
	ServiceDescription string    `json:"service_description"`
	AmountDue          float64   `json:"amount_due"`
	DueDate            time.Time `json:"due_date"`
	HoursWorked        float64   `json:"hours_worked"`
	HourlyRate         float64   `json:"hourly_rate"`
	Category           string    `json:"category"`
}

func (r *InvoiceRequest) ToEntity() (entities.Invoice, bool) {
	if r == nil || strings.TrimSpace(r.InvoiceID) == "" {
		return entities.Invoice{}, false
	}
	return entities.Invoice{
		InvoiceID:          strings.TrimSpace(r.InvoiceID),
		ClientName:         r.ClientName,
		ServiceDescription: r.ServiceDescription,
		AmountDue:          r.AmountDue,
		DueDate:            r.DueDate,
		HoursWorked:        r.HoursWorked,
		HourlyRate:         r.HourlyRate,
		Category:           entities.Category(r.Category),
	}, true
}

type SendInvoiceRequest struct {
	ClientEmail string          `json:"client_email"`
	Invoice     *InvoiceRequest `json:"invoice"`
}

type BillingSubmitRequest struct {
	Invoice *InvoiceRequest `json:"invoice"`
}
