package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/usecase/interfaces"
	mock_interfaces "workorder_invoicing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInvoiceUseCase_GenerateInvoice(t *testing.T) {
	fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewInvoiceUseCase(repo)
		uc.now = func() time.Time { return fixed }

		repo.EXPECT().Load(gomock.Any()).Return(seedOrders(), nil)

		inv, err := uc.GenerateInvoice(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.InvoiceID != "INV-1" || inv.AmountDue != 100 || inv.Category != entities.CategoryMaintenance {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
		if !inv.DueDate.Equal(fixed.Add(7 * 24 * time.Hour)) {
			t.Fatalf("unexpected due date: %s", inv.DueDate)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewInvoiceUseCase(repo)

		repo.EXPECT().Load(gomock.Any()).Return(seedOrders(), nil)

		if _, err := uc.GenerateInvoice(context.Background(), 999); !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewInvoiceUseCase(repo)

		repo.EXPECT().Load(gomock.Any()).Return(nil, interfaces.ErrStorageUnavailable)

		if _, err := uc.GenerateInvoice(context.Background(), 1); !errors.Is(err, interfaces.ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
	})
}
