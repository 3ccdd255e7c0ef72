package interfaces

import (
	"context"
	"workorder_invoicing/internal/domain/entities"
)

// IInvoiceRepository abstracts the append-only invoice store (email-send log).

type IInvoiceRepository interface {
	Append(ctx context.Context, r entities.StoredInvoiceRecord) (entities.StoredInvoiceRecord, error)
	List(ctx context.Context) ([]entities.StoredInvoiceRecord, error)
}

// IBillingLogRepository abstracts the append-only billing-system log.

type IBillingLogRepository interface {
	Append(ctx context.Context, r entities.BillingInvoiceRecord) (entities.BillingInvoiceRecord, error)
	List(ctx context.Context) ([]entities.BillingInvoiceRecord, error)
}
