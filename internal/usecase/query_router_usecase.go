package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"workorder_invoicing/internal/usecase/interfaces"
)

var ErrEmptyQuery = errors.New("empty query")

const (
	startBatchTrigger = "start ai processing"

	ReplyStartingBatch = "Starting AI Processing now..."
	ReplyNoData        = "Sorry, no relevant data was found."
	ReplyFallback      = "Sorry, I couldn't process that request. Starting AI Processing now..."
)

var invoiceIDPattern = regexp.MustCompile(`INV-\d+`)

type CommandKind string

const (
	CommandStartBatch    CommandKind = "start_batch"
	CommandLookupStatus  CommandKind = "lookup_status"
	CommandFreeformQuery CommandKind = "freeform_query"
)

// Command is the classified intent of a chat message. InvoiceID is set for
// CommandLookupStatus and Text for CommandFreeformQuery.
type Command struct {
	Kind      CommandKind
	InvoiceID string
	Text      string
}

// Classify maps a non-blank chat message to a Command. Rules apply in order: the batch
// trigger phrase, then the first invoice id, then free text.
func Classify(input string) Command {
	if strings.Contains(strings.ToLower(input), startBatchTrigger) {
		return Command{Kind: CommandStartBatch}
	}
	if id := invoiceIDPattern.FindString(input); id != "" {
		return Command{Kind: CommandLookupStatus, InvoiceID: id}
	}
	return Command{Kind: CommandFreeformQuery, Text: strings.TrimSpace(input)}
}

type ChatReply struct {
	Response          string      `json:"response"`
	Command           CommandKind `json:"command"`
	FallbackScheduled bool        `json:"fallback_scheduled,omitempty"`
}

type IQueryRouterUseCase interface {
	Route(ctx context.Context, input string) (ChatReply, error)
}

type QueryRouterUseCase struct {
	workOrders    IWorkOrderUseCase
	batch         IBatchProcessorUseCase
	scraper       interfaces.IScrapeService
	fallbackDelay time.Duration
	afterFunc     func(d time.Duration, f func())
}

var _ IQueryRouterUseCase = (*QueryRouterUseCase)(nil)

func NewQueryRouterUseCase(workOrders IWorkOrderUseCase, batch IBatchProcessorUseCase, scraper interfaces.IScrapeService, fallbackDelay time.Duration) *QueryRouterUseCase {
	return &QueryRouterUseCase{
		workOrders:    workOrders,
		batch:         batch,
		scraper:       scraper,
		fallbackDelay: fallbackDelay,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
}

// Route answers a chat message. Lookup and scrape failures never reach the caller: they
// produce an apology and schedule a batch run after the fallback delay.
func (u *QueryRouterUseCase) Route(ctx context.Context, input string) (ChatReply, error) {
	if strings.TrimSpace(input) == "" {
		return ChatReply{}, ErrEmptyQuery
	}

	cmd := Classify(input)
	log.Printf("[chat][usecase] routed command=%s", cmd.Kind)

	switch cmd.Kind {
	case CommandStartBatch:
		u.scheduleBatch(0, "trigger")
		return ChatReply{Response: ReplyStartingBatch, Command: cmd.Kind}, nil

	case CommandLookupStatus:
		view, err := u.workOrders.StatusByInvoiceID(ctx, cmd.InvoiceID)
		if err != nil {
			return u.fallback(cmd, err), nil
		}
		return ChatReply{
			Response: fmt.Sprintf("Work order %s for %s is %s (%s).", view.InvoiceID, view.ClientName, view.Status, view.ServiceDescription),
			Command:  cmd.Kind,
		}, nil

	default:
		answer, err := u.scraper.Scrape(ctx, cmd.Text)
		if err != nil {
			return u.fallback(cmd, err), nil
		}
		if strings.TrimSpace(answer) == "" {
			answer = ReplyNoData
		}
		return ChatReply{Response: answer, Command: cmd.Kind}, nil
	}
}

func (u *QueryRouterUseCase) fallback(cmd Command, err error) ChatReply {
	log.Printf("[chat][usecase] command failed command=%s err=%v", cmd.Kind, err)
	u.scheduleBatch(u.fallbackDelay, "fallback")
	return ChatReply{Response: ReplyFallback, Command: cmd.Kind, FallbackScheduled: true}
}

func (u *QueryRouterUseCase) scheduleBatch(delay time.Duration, reason string) {
	u.afterFunc(delay, func() {
		res, err := u.batch.Run(context.Background())
		if err != nil {
			log.Printf("[chat][usecase] background batch failed reason=%s err=%v", reason, err)
			return
		}
		log.Printf("[chat][usecase] background batch done reason=%s run_id=%s processed=%d failed=%d idle=%t",
			reason, res.RunID, res.Processed, res.Failed, res.Idle)
	})
}
