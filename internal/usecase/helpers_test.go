package usecase

import (
	"context"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/usecase/interfaces"
	mock_interfaces "workorder_invoicing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// expectUpdate makes repo.Update run the mutation against orders and capture what would be
// persisted into saved (left nil when the mutation declines to persist).
func expectUpdate(repo *mock_interfaces.MockIWorkOrderRepository, orders []entities.WorkOrder, saved *[]entities.WorkOrder) *gomock.Call {
	return repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn interfaces.WorkOrderMutation) ([]entities.WorkOrder, error) {
			updated, persist, err := fn(orders)
			if err != nil {
				return nil, err
			}
			if !persist {
				return orders, nil
			}
			if saved != nil {
				*saved = updated
			}
			return updated, nil
		})
}
