package entities

import "time"

// DeliveryStatus is the acknowledgement returned by a delivery simulator.
type DeliveryStatus string

const (
	DeliveryStatusSuccess DeliveryStatus = "Success"
	DeliveryStatusFailure DeliveryStatus = "Failure"
)

// BillingAck is the billing system's answer for one submitted invoice.
type BillingAck struct {
	Status            DeliveryStatus `json:"status"`
	Message           string         `json:"message"`
	Timestamp         time.Time      `json:"timestamp"`
	Provider          string         `json:"provider,omitempty"`
	ProviderReference string         `json:"provider_reference,omitempty"`
}

func (a BillingAck) Succeeded() bool {
	return a.Status == DeliveryStatusSuccess
}

// StoredInvoiceRecord is one entry of the invoice store (the email-send log).
//
// The log is append-only; resending an invoice appends a new record.
type StoredInvoiceRecord struct {
	ID                 string    `json:"id"`
	ClientEmail        string    `json:"client_email"`
	InvoiceID          string    `json:"invoice_id"`
	ClientName         string    `json:"client_name"`
	ServiceDescription string    `json:"service_description"`
	AmountDue          float64   `json:"amount_due"`
	DueDate            time.Time `json:"due_date"`
	Timestamp          time.Time `json:"timestamp"`
}

// BillingInvoiceRecord is one entry of the billing-system log.
type BillingInvoiceRecord struct {
	ID                string         `json:"id"`
	Invoice           Invoice        `json:"invoice"`
	Provider          string         `json:"provider"`
	ProviderReference string         `json:"provider_reference,omitempty"`
	Status            DeliveryStatus `json:"status"`
	Timestamp         time.Time      `json:"timestamp"`
}
