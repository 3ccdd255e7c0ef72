package usecase

import (
	"context"
	"errors"
	"testing"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/usecase/interfaces"
	mock_interfaces "workorder_invoicing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func seedOrders() []entities.WorkOrder {
	return []entities.WorkOrder{
		{ID: 1, ClientName: "Acme", ServiceDescription: "plumbing repair", HoursWorked: 2, HourlyRate: 50, TotalCost: 100, Status: entities.WorkOrderStatusNew},
		{ID: 4, ClientName: "Globex", ServiceDescription: "electrical inspection", HoursWorked: 3, HourlyRate: 80, TotalCost: 240, Status: entities.WorkOrderStatusProcessed},
	}
}

func TestWorkOrderUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
	uc := NewWorkOrderUseCase(repo)

	repo.EXPECT().Load(gomock.Any()).Return(seedOrders(), nil)

	got, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(got))
	}
}

func TestWorkOrderUseCase_Create(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil)
		cases := []CreateWorkOrderInput{
			{ClientName: " ", ServiceDescription: "x", HoursWorked: 1, HourlyRate: 1},
			{ClientName: "a", ServiceDescription: "", HoursWorked: 1, HourlyRate: 1},
			{ClientName: "a", ServiceDescription: "x", HoursWorked: 0, HourlyRate: 1},
			{ClientName: "a", ServiceDescription: "x", HoursWorked: 1, HourlyRate: -5},
			{ClientName: "a", ServiceDescription: "x", HoursWorked: -2, HourlyRate: 0},
		}
		for _, in := range cases {
			if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidWorkOrder) {
				t.Fatalf("%+v: expected ErrInvalidWorkOrder, got %v", in, err)
			}
		}
	})

	t.Run("assigns next id and derived total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)

		var saved []entities.WorkOrder
		expectUpdate(repo, seedOrders(), &saved)

		got, err := uc.Create(context.Background(), CreateWorkOrderInput{
			ClientName: "  Initech ", ServiceDescription: "HVAC tune-up", HoursWorked: 1.5, HourlyRate: 33.333,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 5 || got.Status != entities.WorkOrderStatusNew || got.TotalCost != 50 || got.ClientName != "Initech" {
			t.Fatalf("unexpected order: %+v", got)
		}
		if len(saved) != 3 || saved[2] != got {
			t.Fatalf("expected order appended to collection, got %+v", saved)
		}
	})

	t.Run("first order gets id 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)

		expectUpdate(repo, nil, nil)

		got, err := uc.Create(context.Background(), CreateWorkOrderInput{ClientName: "a", ServiceDescription: "b", HoursWorked: 1, HourlyRate: 1})
		if err != nil || got.ID != 1 {
			t.Fatalf("expected id 1, got %+v err=%v", got, err)
		}
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, interfaces.ErrStorageUnavailable)

		_, err := uc.Create(context.Background(), CreateWorkOrderInput{ClientName: "a", ServiceDescription: "b", HoursWorked: 1, HourlyRate: 1})
		if !errors.Is(err, interfaces.ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_StatusByInvoiceID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil)
		if _, err := uc.StatusByInvoiceID(context.Background(), "  "); !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)

		repo.EXPECT().Load(gomock.Any()).Return(seedOrders(), nil)

		got, err := uc.StatusByInvoiceID(context.Background(), "INV-4")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := WorkOrderStatusView{InvoiceID: "INV-4", ClientName: "Globex", Status: entities.WorkOrderStatusProcessed, ServiceDescription: "electrical inspection"}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)

		repo.EXPECT().Load(gomock.Any()).Return(seedOrders(), nil)

		if _, err := uc.StatusByInvoiceID(context.Background(), "INV-999"); !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)

		repo.EXPECT().Load(gomock.Any()).Return(nil, interfaces.ErrMalformedData)

		if _, err := uc.StatusByInvoiceID(context.Background(), "INV-1"); !errors.Is(err, interfaces.ErrMalformedData) {
			t.Fatalf("expected ErrMalformedData, got %v", err)
		}
	})
}
