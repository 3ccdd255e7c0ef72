package filestore

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/usecase/interfaces"
)

const WorkOrdersFileName = "workOrders.json"

// WorkOrderFileRepository persists the work order collection in DATA_DIR/workOrders.json.
//
// The file must exist: it is the seed data, so a missing file is ErrStorageUnavailable.
type WorkOrderFileRepository struct {
	file *jsonFile[entities.WorkOrder]

	// writeMu serializes Update calls; Load only takes the file's read lock.
	writeMu sync.Mutex
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderFileRepository)(nil)

func NewWorkOrderFileRepository(dataDir string) *WorkOrderFileRepository {
	return &WorkOrderFileRepository{
		file: newJSONFile[entities.WorkOrder](filepath.Join(dataDir, WorkOrdersFileName), false),
	}
}

func (r *WorkOrderFileRepository) Load(ctx context.Context) ([]entities.WorkOrder, error) {
	return r.file.read(ctx)
}

func (r *WorkOrderFileRepository) Save(ctx context.Context, orders []entities.WorkOrder) error {
	return r.file.write(ctx, orders)
}

// Init creates an empty collection when the file does not exist yet. An existing file is
// left untouched.
func (r *WorkOrderFileRepository) Init(ctx context.Context) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if _, err := os.Stat(r.file.path); !errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	log.Printf("[workorder][filestore] creating empty store path=%s", r.file.path)
	return r.file.write(ctx, []entities.WorkOrder{})
}

func (r *WorkOrderFileRepository) Update(ctx context.Context, fn interfaces.WorkOrderMutation) ([]entities.WorkOrder, error) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	orders, err := r.file.read(ctx)
	if err != nil {
		return nil, err
	}

	updated, persist, err := fn(orders)
	if err != nil {
		return nil, err
	}
	if !persist {
		return orders, nil
	}

	if err := r.file.write(ctx, updated); err != nil {
		log.Printf("[workorder][filestore] save failed path=%s err=%v", r.file.path, err)
		return nil, err
	}
	return updated, nil
}
