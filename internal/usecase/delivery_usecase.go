package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"text/template"
	"time"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidInvoice   = errors.New("invoice data missing")
	ErrInvalidRecipient = errors.New("invalid email recipient")
)

var invoiceEmailTemplate = template.Must(template.New("invoice_email").Parse(
	`Dear {{.ClientName}},

Here is your invoice for {{.ServiceDescription}}.

Invoice ID: {{.InvoiceID}}
Amount Due: ${{printf "%.2f" .AmountDue}}
Due Date: {{.DueDate.Format "2006-01-02"}}

Thank you!
`))

type IDeliveryUseCase interface {
	SubmitToBilling(ctx context.Context, invoice entities.Invoice) (entities.BillingAck, error)
	SendToClient(ctx context.Context, clientEmail string, invoice entities.Invoice) (entities.StoredInvoiceRecord, error)
}

// DeliveryUseCase hands invoices to the billing system and to the client, recording every
// delivery in the matching append-only log.
type DeliveryUseCase struct {
	gateway          interfaces.IBillingGateway
	billingLog       interfaces.IBillingLogRepository
	notifier         interfaces.INotifier
	invoices         interfaces.IInvoiceRepository
	defaultRecipient string
	now              func() time.Time
}

var _ IDeliveryUseCase = (*DeliveryUseCase)(nil)

func NewDeliveryUseCase(
	gateway interfaces.IBillingGateway,
	billingLog interfaces.IBillingLogRepository,
	notifier interfaces.INotifier,
	invoices interfaces.IInvoiceRepository,
	defaultRecipient string,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		gateway:          gateway,
		billingLog:       billingLog,
		notifier:         notifier,
		invoices:         invoices,
		defaultRecipient: defaultRecipient,
		now:              time.Now,
	}
}

func (u *DeliveryUseCase) SubmitToBilling(ctx context.Context, invoice entities.Invoice) (entities.BillingAck, error) {
	if strings.TrimSpace(invoice.InvoiceID) == "" {
		return entities.BillingAck{}, ErrInvalidInvoice
	}

	ack, err := u.gateway.SubmitInvoice(ctx, invoice)
	if err != nil {
		log.Printf("[delivery][billing] submit failed invoice_id=%s provider=%s err=%v", invoice.InvoiceID, u.gateway.Name(), err)
		return entities.BillingAck{}, err
	}

	provider := ack.Provider
	if provider == "" {
		provider = u.gateway.Name()
	}
	rec := entities.BillingInvoiceRecord{
		ID:                uuid.NewString(),
		Invoice:           invoice,
		Provider:          provider,
		ProviderReference: ack.ProviderReference,
		Status:            ack.Status,
		Timestamp:         u.now().UTC(),
	}
	if _, err := u.billingLog.Append(ctx, rec); err != nil {
		log.Printf("[delivery][billing] log append failed invoice_id=%s err=%v", invoice.InvoiceID, err)
		return entities.BillingAck{}, fmt.Errorf("record billing submission: %w", err)
	}

	log.Printf("[delivery][billing] submitted invoice_id=%s provider=%s status=%s", invoice.InvoiceID, provider, ack.Status)
	return ack, nil
}

func (u *DeliveryUseCase) SendToClient(ctx context.Context, clientEmail string, invoice entities.Invoice) (entities.StoredInvoiceRecord, error) {
	if strings.TrimSpace(invoice.InvoiceID) == "" {
		return entities.StoredInvoiceRecord{}, ErrInvalidInvoice
	}
	recipient := strings.TrimSpace(clientEmail)
	if recipient == "" {
		recipient = u.defaultRecipient
	}
	if recipient == "" || !strings.Contains(recipient, "@") {
		return entities.StoredInvoiceRecord{}, ErrInvalidRecipient
	}

	msg, err := RenderInvoiceEmail(recipient, invoice)
	if err != nil {
		return entities.StoredInvoiceRecord{}, err
	}
	if err := u.notifier.Send(ctx, msg); err != nil {
		log.Printf("[delivery][email] send failed invoice_id=%s to=%s err=%v", invoice.InvoiceID, recipient, err)
		return entities.StoredInvoiceRecord{}, err
	}

	rec := entities.StoredInvoiceRecord{
		ID:                 uuid.NewString(),
		ClientEmail:        recipient,
		InvoiceID:          invoice.InvoiceID,
		ClientName:         invoice.ClientName,
		ServiceDescription: invoice.ServiceDescription,
		AmountDue:          invoice.AmountDue,
		DueDate:            invoice.DueDate,
		Timestamp:          u.now().UTC(),
	}
	if _, err := u.invoices.Append(ctx, rec); err != nil {
		log.Printf("[delivery][email] store append failed invoice_id=%s err=%v", invoice.InvoiceID, err)
		return entities.StoredInvoiceRecord{}, fmt.Errorf("record sent invoice: %w", err)
	}

	log.Printf("[delivery][email] sent invoice_id=%s to=%s", invoice.InvoiceID, recipient)
	return rec, nil
}

// RenderInvoiceEmail builds the plain-text email for invoice addressed to recipient.
func RenderInvoiceEmail(recipient string, invoice entities.Invoice) (interfaces.EmailMessage, error) {
	var body bytes.Buffer
	if err := invoiceEmailTemplate.Execute(&body, invoice); err != nil {
		return interfaces.EmailMessage{}, fmt.Errorf("render invoice email: %w", err)
	}
	return interfaces.EmailMessage{
		To:      recipient,
		Subject: "Invoice " + invoice.InvoiceID,
		Body:    body.String(),
	}, nil
}
