package response

import (
	"time"

	"workorder_invoicing/internal/domain/entities"
)

const MessageInvoiceSent = "Invoice stored successfully and email sent to client!"

type InvoiceResponse struct {
	InvoiceID          string    `json:"invoice_id"`
	ClientName         string    `json:"client_name"`
	ServiceDescription string    `json:"service_description"`
	AmountDue          float64   `json:"amount_due"`
	DueDate            time.Time `json:"due_date"`
	HoursWorked        float64   `json:"hours_worked"`
	HourlyRate         float64   `json:"hourly_rate"`
	Category           string    `json:"category,omitempty"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:          i.InvoiceID,
		ClientName:         i.ClientName,
		ServiceDescription: i.ServiceDescription,
		AmountDue:          i.AmountDue,
		DueDate:            i.DueDate,
		HoursWorked:        i.HoursWorked,
		HourlyRate:         i.HourlyRate,
		Category:           string(i.Category),
	}
}

type EmailContentResponse struct {
	ClientEmail        string    `json:"client_email"`
	InvoiceID          string    `json:"invoice_id"`
	ClientName         string    `json:"client_name"`
	ServiceDescription string    `json:"service_description"`
	AmountDue          float64   `json:"amount_due"`
	DueDate            time.Time `json:"due_date"`
	Timestamp          time.Time `json:"timestamp"`
}

type SendInvoiceResponse struct {
	Message      string               `json:"message"`
	EmailContent EmailContentResponse `json:"emailContent"`
}

func FromStoredInvoice(r entities.StoredInvoiceRecord) SendInvoiceResponse {
	return SendInvoiceResponse{
		Message: MessageInvoiceSent,
		EmailContent: EmailContentResponse{
			ClientEmail:        r.ClientEmail,
			InvoiceID:          r.InvoiceID,
			ClientName:         r.ClientName,
			ServiceDescription: r.ServiceDescription,
			AmountDue:          r.AmountDue,
			DueDate:            r.DueDate,
			Timestamp:          r.Timestamp,
		},
	}
}

type BillingAckResponse struct {
	Status            string    `json:"status"`
	Message           string    `json:"message"`
	Timestamp         time.Time `json:"timestamp"`
	Provider          string    `json:"provider,omitempty"`
	ProviderReference string    `json:"provider_reference,omitempty"`
}

func FromBillingAck(a entities.BillingAck) BillingAckResponse {
	return BillingAckResponse{
		Status:            string(a.Status),
		Message:           a.Message,
		Timestamp:         a.Timestamp,
		Provider:          a.Provider,
		ProviderReference: a.ProviderReference,
	}
}
