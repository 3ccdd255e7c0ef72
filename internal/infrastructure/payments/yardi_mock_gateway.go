package payments

import (
	"context"
	"fmt"
	"log"
	"time"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const YardiMockProvider = "yardi-mock"

// YardiMockGateway simulates the Yardi billing system: it waits a fixed delay and accepts
// every invoice, unless configured to reject them.
type YardiMockGateway struct {
	delay time.Duration
	fail  bool
	now   func() time.Time
}

var _ interfaces.IBillingGateway = (*YardiMockGateway)(nil)

func NewYardiMockGateway(delay time.Duration, fail bool) *YardiMockGateway {
	return &YardiMockGateway{delay: delay, fail: fail, now: time.Now}
}

func (g *YardiMockGateway) Name() string { return YardiMockProvider }

func (g *YardiMockGateway) SubmitInvoice(ctx context.Context, invoice entities.Invoice) (entities.BillingAck, error) {
	log.Printf("[billing][yardi-mock] submit start invoice_id=%s amount_due=%.2f", invoice.InvoiceID, invoice.AmountDue)

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			log.Printf("[billing][yardi-mock] submit aborted invoice_id=%s err=%v", invoice.InvoiceID, ctx.Err())
			return entities.BillingAck{}, ctx.Err()
		case <-timer.C:
		}
	}

	ack := entities.BillingAck{
		Status:            entities.DeliveryStatusSuccess,
		Message:           fmt.Sprintf("Invoice %s has been received and processed by Yardi.", invoice.InvoiceID),
		Timestamp:         g.now().UTC(),
		Provider:          YardiMockProvider,
		ProviderReference: uuid.NewString(),
	}
	if g.fail {
		ack.Status = entities.DeliveryStatusFailure
		ack.Message = fmt.Sprintf("Invoice %s was rejected by Yardi.", invoice.InvoiceID)
		ack.ProviderReference = ""
	}

	log.Printf("[billing][yardi-mock] submit done invoice_id=%s status=%s", invoice.InvoiceID, ack.Status)
	return ack, nil
}
