package interfaces

import (
	"context"
	"workorder_invoicing/internal/domain/entities"
)

// WorkOrderMutation receives the whole collection and returns the collection to persist.
// Returning persist=false leaves the store untouched.
type WorkOrderMutation func(orders []entities.WorkOrder) (updated []entities.WorkOrder, persist bool, err error)

// IWorkOrderRepository abstracts the work order store.
//
// The store only knows whole collections:
//   - Load reads every order (ErrStorageUnavailable / ErrMalformedData on failure)
//   - Save rewrites every order (ErrStorageUnavailable on failure)
//   - Update is the single-writer read-modify-write; concurrent Update calls run one at a time
//     and do not block Load.

type IWorkOrderRepository interface {
	Load(ctx context.Context) ([]entities.WorkOrder, error)
	Save(ctx context.Context, orders []entities.WorkOrder) error
	Update(ctx context.Context, fn WorkOrderMutation) ([]entities.WorkOrder, error)
}
