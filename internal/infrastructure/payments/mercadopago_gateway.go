package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

const MercadoPagoProvider = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway registers each invoice as a pending pix payment for its amount due.
// The invoice id travels as the payment's external_reference.
type MercadoPagoGateway struct {
	client     payment.Client
	payerEmail string
	mockMode   bool
	now        func() time.Time
}

var _ interfaces.IBillingGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, payerEmail string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Printf("[billing][mercadopago] mock mode enabled")
		return &MercadoPagoGateway{payerEmail: payerEmail, mockMode: true, now: time.Now}, nil
	}

	if accessToken == "" {
		log.Printf("[billing][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[billing][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[billing][mercadopago] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), payerEmail: payerEmail, now: time.Now}, nil
}

func (g *MercadoPagoGateway) Name() string { return MercadoPagoProvider }

func (g *MercadoPagoGateway) SubmitInvoice(ctx context.Context, invoice entities.Invoice) (entities.BillingAck, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(g.now().UTC().UnixNano(), 10)
		log.Printf("[billing][mercadopago] mock create success invoice_id=%s provider_payment_id=%s provider_status=approved", invoice.InvoiceID, id)
		return g.ack(invoice, id, "approved"), nil
	}

	if g == nil || g.client == nil {
		log.Printf("[billing][mercadopago] gateway not configured")
		return entities.BillingAck{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[billing][mercadopago] create start invoice_id=%s amount_due=%.2f", invoice.InvoiceID, invoice.AmountDue)

	req, err := g.paymentRequest(invoice)
	if err != nil {
		log.Printf("[billing][mercadopago] request build failed invoice_id=%s err=%v", invoice.InvoiceID, err)
		return entities.BillingAck{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[billing][mercadopago] sdk create failed invoice_id=%s err=%v", invoice.InvoiceID, err)
		return entities.BillingAck{}, fmt.Errorf("%w: mercado pago: %v", interfaces.ErrUpstreamFailure, err)
	}
	log.Printf("[billing][mercadopago] create success invoice_id=%s provider_payment_id=%d provider_status=%s", invoice.InvoiceID, resp.ID, resp.Status)

	return g.ack(invoice, strconv.Itoa(resp.ID), resp.Status), nil
}

func (g *MercadoPagoGateway) paymentRequest(invoice entities.Invoice) (payment.Request, error) {
	payload := map[string]any{
		"transaction_amount": invoice.AmountDue,
		"description":        fmt.Sprintf("%s - %s", invoice.InvoiceID, invoice.ServiceDescription),
		"payment_method_id":  "pix",
		"external_reference": invoice.InvoiceID,
		"date_of_expiration": invoice.DueDate.UTC().Format("2006-01-02T15:04:05.000-07:00"),
		"payer": map[string]any{
			"email":      g.payerEmail,
			"first_name": invoice.ClientName,
		},
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return payment.Request{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(b, &req); err != nil {
		return payment.Request{}, err
	}
	return req, nil
}

// ack maps a Mercado Pago payment status to a billing acknowledgement. A freshly created pix
// payment is "pending" until the client pays, which still counts as accepted.
func (g *MercadoPagoGateway) ack(invoice entities.Invoice, providerID, providerStatus string) entities.BillingAck {
	ack := entities.BillingAck{
		Status:            entities.DeliveryStatusSuccess,
		Message:           fmt.Sprintf("Invoice %s registered with Mercado Pago (status %s).", invoice.InvoiceID, providerStatus),
		Timestamp:         g.now().UTC(),
		Provider:          MercadoPagoProvider,
		ProviderReference: providerID,
	}
	switch providerStatus {
	case "rejected", "cancelled", "refunded", "charged_back":
		ack.Status = entities.DeliveryStatusFailure
		ack.Message = fmt.Sprintf("Invoice %s was not accepted by Mercado Pago (status %s).", invoice.InvoiceID, providerStatus)
	}
	return ack
}
