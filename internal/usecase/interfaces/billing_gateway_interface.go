package interfaces

import (
	"context"
	"workorder_invoicing/internal/domain/entities"
)

// IBillingGateway abstracts the external billing system (Yardi mock, Mercado Pago).
//
// A gateway reports a rejected invoice as an ack with DeliveryStatusFailure; an error
// means the gateway could not be reached or answered garbage.
type IBillingGateway interface {
	Name() string
	SubmitInvoice(ctx context.Context, invoice entities.Invoice) (entities.BillingAck, error)
}
