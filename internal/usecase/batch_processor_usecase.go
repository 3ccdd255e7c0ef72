package usecase

import (
	"context"
	"log"
	"time"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/domain/invoicing"
	"workorder_invoicing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	BatchOutcomeCompleted = "completed"
	BatchOutcomeIdle      = "idle"
	BatchOutcomeError     = "error"

	DeliveryStepBilling = "billing"
	DeliveryStepEmail   = "email"
)

// OrderOutcome reports what one run did to one order.
type OrderOutcome struct {
	WorkOrderID   int                      `json:"work_order_id"`
	InvoiceID     string                   `json:"invoice_id"`
	Status        entities.WorkOrderStatus `json:"status"`
	BillingStatus entities.DeliveryStatus  `json:"billing_status"`
	EmailStatus   entities.DeliveryStatus  `json:"email_status"`
	Recovered     bool                     `json:"recovered,omitempty"`
	Error         string                   `json:"error,omitempty"`
}

type BatchResult struct {
	RunID      string               `json:"run_id"`
	Idle       bool                 `json:"idle"`
	Outcomes   []OrderOutcome       `json:"outcomes"`
	Processed  int                  `json:"processed"`
	Failed     int                  `json:"failed"`
	WorkOrders []entities.WorkOrder `json:"work_orders"`
	StartedAt  time.Time            `json:"started_at"`
	FinishedAt time.Time            `json:"finished_at"`
}

type IBatchProcessorUseCase interface {
	Run(ctx context.Context) (BatchResult, error)
}

// BatchProcessorOptions tunes a BatchProcessorUseCase; zero values take the defaults.
type BatchProcessorOptions struct {
	ClientEmail     string
	DeliveryTimeout time.Duration
	RecoveryAfter   time.Duration
}

// BatchProcessorUseCase advances every eligible work order to processed or failed in one
// pass: invoice generation, billing submission, then the client email.
type BatchProcessorUseCase struct {
	repo     interfaces.IWorkOrderRepository
	delivery IDeliveryUseCase
	metrics  interfaces.IBatchMetrics
	opts     BatchProcessorOptions
	now      func() time.Time
}

var _ IBatchProcessorUseCase = (*BatchProcessorUseCase)(nil)

func NewBatchProcessorUseCase(repo interfaces.IWorkOrderRepository, delivery IDeliveryUseCase, metrics interfaces.IBatchMetrics, opts BatchProcessorOptions) *BatchProcessorUseCase {
	if opts.DeliveryTimeout <= 0 {
		opts.DeliveryTimeout = 10 * time.Second
	}
	if opts.RecoveryAfter <= 0 {
		opts.RecoveryAfter = 15 * time.Minute
	}
	return &BatchProcessorUseCase{repo: repo, delivery: delivery, metrics: metrics, opts: opts, now: time.Now}
}

// Run processes the batch under the store's single-writer Update and writes the collection
// once at the end. The caller's cancellation does not stop a started batch.
//
// The store's write lock is held for the whole run, delivery calls included, so other writers
// such as Create wait up to 2 x DeliveryTimeout per selected order.
//
// processing_started_at only lives in memory during a run: orders leave the run terminal, so a
// persisted processing order was written by someone else (seed data, another tool). Without a
// marker it is reselected at once; with one it waits for RecoveryAfter.
func (u *BatchProcessorUseCase) Run(ctx context.Context) (BatchResult, error) {
	ctx = context.WithoutCancel(ctx)
	result := BatchResult{RunID: uuid.NewString(), StartedAt: u.now().UTC()}
	log.Printf("[batch][usecase] run start run_id=%s", result.RunID)

	orders, err := u.repo.Update(ctx, func(orders []entities.WorkOrder) ([]entities.WorkOrder, bool, error) {
		selected, recovered := u.selectEligible(orders, result.StartedAt)
		if len(selected) == 0 {
			result.Idle = true
			return orders, false, nil
		}

		startedAt := result.StartedAt
		for _, i := range selected {
			orders[i].Status = entities.WorkOrderStatusProcessing
			orders[i].ProcessingStartedAt = &startedAt
		}

		for _, i := range selected {
			outcome := u.processOne(ctx, orders[i])
			outcome.Recovered = recovered[i]
			orders[i].Status = outcome.Status
			orders[i].ProcessingStartedAt = nil

			if outcome.Status == entities.WorkOrderStatusProcessed {
				result.Processed++
			} else {
				result.Failed++
			}
			u.observeOrder(outcome.Status)
			result.Outcomes = append(result.Outcomes, outcome)
		}
		return orders, true, nil
	})
	result.FinishedAt = u.now().UTC()

	if err != nil {
		log.Printf("[batch][usecase] run failed run_id=%s err=%v", result.RunID, err)
		u.observeRun(BatchOutcomeError, result)
		return BatchResult{}, err
	}
	result.WorkOrders = orders

	if result.Idle {
		log.Printf("[batch][usecase] run idle run_id=%s", result.RunID)
		u.observeRun(BatchOutcomeIdle, result)
		return result, nil
	}

	log.Printf("[batch][usecase] run done run_id=%s processed=%d failed=%d", result.RunID, result.Processed, result.Failed)
	u.observeRun(BatchOutcomeCompleted, result)
	return result, nil
}

// selectEligible returns indexes of new orders plus processing orders whose start marker is
// missing or older than the recovery threshold, in collection order.
func (u *BatchProcessorUseCase) selectEligible(orders []entities.WorkOrder, now time.Time) ([]int, map[int]bool) {
	var selected []int
	recovered := map[int]bool{}
	for i, o := range orders {
		switch o.Status {
		case entities.WorkOrderStatusNew:
			selected = append(selected, i)
		case entities.WorkOrderStatusProcessing:
			if o.ProcessingStartedAt == nil || now.Sub(*o.ProcessingStartedAt) >= u.opts.RecoveryAfter {
				log.Printf("[batch][usecase] recovering stale order id=%d", o.ID)
				selected = append(selected, i)
				recovered[i] = true
			}
		}
	}
	return selected, recovered
}

func (u *BatchProcessorUseCase) processOne(ctx context.Context, order entities.WorkOrder) OrderOutcome {
	invoice := invoicing.Generate(order, u.now())
	outcome := OrderOutcome{
		WorkOrderID:   order.ID,
		InvoiceID:     invoice.InvoiceID,
		Status:        entities.WorkOrderStatusFailed,
		BillingStatus: entities.DeliveryStatusFailure,
		EmailStatus:   entities.DeliveryStatusFailure,
	}

	billingOK, err := u.step(ctx, DeliveryStepBilling, func(ctx context.Context) (bool, error) {
		ack, err := u.delivery.SubmitToBilling(ctx, invoice)
		return err == nil && ack.Succeeded(), err
	})
	if billingOK {
		outcome.BillingStatus = entities.DeliveryStatusSuccess
	}
	if err != nil {
		outcome.Error = err.Error()
	}

	emailOK, err := u.step(ctx, DeliveryStepEmail, func(ctx context.Context) (bool, error) {
		_, err := u.delivery.SendToClient(ctx, u.opts.ClientEmail, invoice)
		return err == nil, err
	})
	if emailOK {
		outcome.EmailStatus = entities.DeliveryStatusSuccess
	}
	if err != nil && outcome.Error == "" {
		outcome.Error = err.Error()
	}

	if billingOK && emailOK {
		outcome.Status = entities.WorkOrderStatusProcessed
	}
	log.Printf("[batch][usecase] order done id=%d invoice_id=%s status=%s billing=%s email=%s",
		order.ID, invoice.InvoiceID, outcome.Status, outcome.BillingStatus, outcome.EmailStatus)
	return outcome
}

func (u *BatchProcessorUseCase) step(ctx context.Context, name string, fn func(context.Context) (bool, error)) (bool, error) {
	stepCtx, cancel := context.WithTimeout(ctx, u.opts.DeliveryTimeout)
	defer cancel()

	start := time.Now()
	ok, err := fn(stepCtx)
	if u.metrics != nil {
		u.metrics.ObserveDelivery(name, ok, time.Since(start))
	}
	return ok, err
}

func (u *BatchProcessorUseCase) observeOrder(status entities.WorkOrderStatus) {
	if u.metrics != nil {
		u.metrics.ObserveOrder(status)
	}
}

func (u *BatchProcessorUseCase) observeRun(outcome string, result BatchResult) {
	if u.metrics != nil {
		u.metrics.ObserveRun(outcome, result.FinishedAt.Sub(result.StartedAt))
	}
}
