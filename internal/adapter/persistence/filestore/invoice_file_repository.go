package filestore

import (
	"context"
	"path/filepath"
	"sync"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/usecase/interfaces"
)

const (
	StoredInvoicesFileName = "storedInvoices.json"
	BillingLogFileName     = "yardiInvoices.json"
)

// appendLog is an append-only collection backed by a JSON array.
// A missing file is an empty log; it gets created on the first append.
type appendLog[T any] struct {
	file     *jsonFile[T]
	appendMu sync.Mutex
}

func newAppendLog[T any](path string) *appendLog[T] {
	return &appendLog[T]{file: newJSONFile[T](path, true)}
}

func (l *appendLog[T]) append(ctx context.Context, item T) error {
	l.appendMu.Lock()
	defer l.appendMu.Unlock()

	items, err := l.file.read(ctx)
	if err != nil {
		return err
	}
	return l.file.write(ctx, append(items, item))
}

// InvoiceFileRepository is the invoice store kept in DATA_DIR/storedInvoices.json.
type InvoiceFileRepository struct {
	log *appendLog[entities.StoredInvoiceRecord]
}

var _ interfaces.IInvoiceRepository = (*InvoiceFileRepository)(nil)

func NewInvoiceFileRepository(dataDir string) *InvoiceFileRepository {
	return &InvoiceFileRepository{
		log: newAppendLog[entities.StoredInvoiceRecord](filepath.Join(dataDir, StoredInvoicesFileName)),
	}
}

func (r *InvoiceFileRepository) Append(ctx context.Context, rec entities.StoredInvoiceRecord) (entities.StoredInvoiceRecord, error) {
	if err := r.log.append(ctx, rec); err != nil {
		return entities.StoredInvoiceRecord{}, err
	}
	return rec, nil
}

func (r *InvoiceFileRepository) List(ctx context.Context) ([]entities.StoredInvoiceRecord, error) {
	return r.log.file.read(ctx)
}

// BillingLogFileRepository is the billing-system log kept in DATA_DIR/yardiInvoices.json.
type BillingLogFileRepository struct {
	log *appendLog[entities.BillingInvoiceRecord]
}

var _ interfaces.IBillingLogRepository = (*BillingLogFileRepository)(nil)

func NewBillingLogFileRepository(dataDir string) *BillingLogFileRepository {
	return &BillingLogFileRepository{
		log: newAppendLog[entities.BillingInvoiceRecord](filepath.Join(dataDir, BillingLogFileName)),
	}
}

func (r *BillingLogFileRepository) Append(ctx context.Context, rec entities.BillingInvoiceRecord) (entities.BillingInvoiceRecord, error) {
	if err := r.log.append(ctx, rec); err != nil {
		return entities.BillingInvoiceRecord{}, err
	}
	return rec, nil
}

func (r *BillingLogFileRepository) List(ctx context.Context) ([]entities.BillingInvoiceRecord, error) {
	return r.log.file.read(ctx)
}
