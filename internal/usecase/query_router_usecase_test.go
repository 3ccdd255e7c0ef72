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

type fakeBatch struct {
	runs int
}

func (f *fakeBatch) Run(context.Context) (BatchResult, error) {
	f.runs++
	return BatchResult{RunID: "run-1"}, nil
}

type routerUnderTest struct {
	uc      *QueryRouterUseCase
	repo    *mock_interfaces.MockIWorkOrderRepository
	scraper *mock_interfaces.MockIScrapeService
	batch   *fakeBatch
	delays  []time.Duration
}

func newRouterUnderTest(ctrl *gomock.Controller) *routerUnderTest {
	r := &routerUnderTest{
		repo:    mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		scraper: mock_interfaces.NewMockIScrapeService(ctrl),
		batch:   &fakeBatch{},
	}
	r.uc = NewQueryRouterUseCase(NewWorkOrderUseCase(r.repo), r.batch, r.scraper, 3*time.Second)
	r.uc.afterFunc = func(d time.Duration, f func()) {
		r.delays = append(r.delays, d)
		f()
	}
	return r
}

func TestClassify(t *testing.T) {
	cases := []struct {
		input string
		want  Command
	}{
		{"Start AI Processing", Command{Kind: CommandStartBatch}},
		{"please start ai processing for INV-3", Command{Kind: CommandStartBatch}},
		{"what is the status of INV-42?", Command{Kind: CommandLookupStatus, InvoiceID: "INV-42"}},
		{"INV-7 and INV-8", Command{Kind: CommandLookupStatus, InvoiceID: "INV-7"}},
		{"inv-7 lowercase is free text", Command{Kind: CommandFreeformQuery, Text: "inv-7 lowercase is free text"}},
		{"  plumbing prices  ", Command{Kind: CommandFreeformQuery, Text: "plumbing prices"}},
		{"INV- without digits", Command{Kind: CommandFreeformQuery, Text: "INV- without digits"}},
	}

	for _, tc := range cases {
		if got := Classify(tc.input); got != tc.want {
			t.Fatalf("%q: expected %+v got %+v", tc.input, tc.want, got)
		}
	}
}

func TestQueryRouterUseCase_Route(t *testing.T) {
	t.Run("blank input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouterUnderTest(ctrl)

		if _, err := r.uc.Route(context.Background(), "   "); !errors.Is(err, ErrEmptyQuery) {
			t.Fatalf("expected ErrEmptyQuery, got %v", err)
		}
	})

	t.Run("trigger starts batch immediately", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouterUnderTest(ctrl)

		reply, err := r.uc.Route(context.Background(), "Start AI Processing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Response != ReplyStartingBatch || reply.FallbackScheduled {
			t.Fatalf("unexpected reply: %+v", reply)
		}
		if r.batch.runs != 1 || len(r.delays) != 1 || r.delays[0] != 0 {
			t.Fatalf("expected one immediate run, got runs=%d delays=%v", r.batch.runs, r.delays)
		}
	})

	t.Run("status lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouterUnderTest(ctrl)

		r.repo.EXPECT().Load(gomock.Any()).Return([]entities.WorkOrder{
			{ID: 1, ClientName: "Acme", ServiceDescription: "plumbing repair", Status: entities.WorkOrderStatusProcessed},
		}, nil)

		reply, err := r.uc.Route(context.Background(), "where is INV-1?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Response != "Work order INV-1 for Acme is processed (plumbing repair)." || reply.Command != CommandLookupStatus {
			t.Fatalf("unexpected reply: %+v", reply)
		}
		if r.batch.runs != 0 {
			t.Fatalf("lookup must not start a batch")
		}
	})

	t.Run("unknown invoice falls back to delayed batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouterUnderTest(ctrl)

		r.repo.EXPECT().Load(gomock.Any()).Return(nil, nil)

		reply, err := r.uc.Route(context.Background(), "INV-99")
		if err != nil {
			t.Fatalf("errors must not reach the caller, got %v", err)
		}
		if reply.Response != ReplyFallback || !reply.FallbackScheduled {
			t.Fatalf("unexpected reply: %+v", reply)
		}
		if r.batch.runs != 1 || r.delays[0] != 3*time.Second {
			t.Fatalf("expected batch scheduled after 3s, got runs=%d delays=%v", r.batch.runs, r.delays)
		}
	})

	t.Run("free text goes to scraper", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouterUnderTest(ctrl)

		r.scraper.EXPECT().Scrape(gomock.Any(), "plumbing prices").Return("about 50 per hour", nil)

		reply, err := r.uc.Route(context.Background(), " plumbing prices ")
		if err != nil || reply.Response != "about 50 per hour" {
			t.Fatalf("unexpected reply %+v err=%v", reply, err)
		}
	})

	t.Run("empty scrape answer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouterUnderTest(ctrl)

		r.scraper.EXPECT().Scrape(gomock.Any(), gomock.Any()).Return("", nil)

		reply, _ := r.uc.Route(context.Background(), "anything")
		if reply.Response != ReplyNoData || reply.FallbackScheduled {
			t.Fatalf("unexpected reply: %+v", reply)
		}
	})

	t.Run("scrape failure falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouterUnderTest(ctrl)

		r.scraper.EXPECT().Scrape(gomock.Any(), gomock.Any()).Return("", &interfaces.UpstreamStatusError{Service: "scrape service", StatusCode: 500})

		reply, err := r.uc.Route(context.Background(), "anything")
		if err != nil || !reply.FallbackScheduled || r.batch.runs != 1 {
			t.Fatalf("expected fallback, got %+v err=%v runs=%d", reply, err, r.batch.runs)
		}
	})
}
