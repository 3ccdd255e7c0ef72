package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items keyed by their "id" attribute and pages scans by pageSize.
type fakeDynamo struct {
	mu         sync.Mutex
	items      map[string]map[string]types.AttributeValue
	order      []string
	pageSize   int
	scanErr    error
	batchCalls []int
	// unprocessedOnce returns the first request of the first batch as unprocessed.
	unprocessedOnce bool
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}, pageSize: 2}
}

func idKey(item map[string]types.AttributeValue) string {
	switch v := item["id"].(type) {
	case *types.AttributeValueMemberN:
		return v.Value
	case *types.AttributeValueMemberS:
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) put(item map[string]types.AttributeValue) {
	k := idKey(item)
	if _, ok := f.items[k]; !ok {
		f.order = append(f.order, k)
	}
	f.items[k] = item
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	start := 0
	if in.ExclusiveStartKey != nil {
		start, _ = strconv.Atoi(in.ExclusiveStartKey["offset"].(*types.AttributeValueMemberN).Value)
	}
	end := min(start+f.pageSize, len(f.order))
	out := &dynamodb.ScanOutput{}
	for _, k := range f.order[start:end] {
		out.Items = append(out.Items, f.items[k])
	}
	if end < len(f.order) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"offset": &types.AttributeValueMemberN{Value: strconv.Itoa(end)},
		}
	}
	return out, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.items[idKey(in.Item)]; exists && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.put(in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &dynamodb.BatchWriteItemOutput{}
	for table, reqs := range in.RequestItems {
		f.batchCalls = append(f.batchCalls, len(reqs))
		if f.unprocessedOnce && len(reqs) > 0 {
			f.unprocessedOnce = false
			out.UnprocessedItems = map[string][]types.WriteRequest{table: reqs[:1]}
			reqs = reqs[1:]
		}
		for _, r := range reqs {
			f.put(r.PutRequest.Item)
		}
	}
	return out, nil
}

func sampleOrders(n int) []entities.WorkOrder {
	orders := make([]entities.WorkOrder, 0, n)
	for i := n; i >= 1; i-- {
		orders = append(orders, entities.WorkOrder{
			ID:                 i,
			ClientName:         "Client " + strconv.Itoa(i),
			ServiceDescription: "plumbing",
			HoursWorked:        2,
			HourlyRate:         40,
			TotalCost:          80,
			Status:             entities.WorkOrderStatusNew,
		})
	}
	return orders
}

func TestWorkOrderDynamoRepository_SaveAndLoad(t *testing.T) {
	ddb := newFakeDynamo()
	repo := newWorkOrderDynamoRepository(ddb, "")

	started := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	orders := sampleOrders(30)
	orders[0].Status = entities.WorkOrderStatusProcessing
	orders[0].ProcessingStartedAt = &started

	if err := repo.Save(context.Background(), orders); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if len(ddb.batchCalls) != 2 || ddb.batchCalls[0] != 25 || ddb.batchCalls[1] != 5 {
		t.Fatalf("expected chunks of 25 and 5, got %v", ddb.batchCalls)
	}

	loaded, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(loaded) != 30 {
		t.Fatalf("expected 30 orders across pages, got %d", len(loaded))
	}
	for i, o := range loaded {
		if o.ID != i+1 {
			t.Fatalf("expected orders sorted by id, position %d has id %d", i, o.ID)
		}
	}
	last := loaded[29]
	if last.Status != entities.WorkOrderStatusProcessing || last.ProcessingStartedAt == nil || !last.ProcessingStartedAt.Equal(started) {
		t.Fatalf("processing marker not round-tripped: %+v", last)
	}
	if loaded[0].ProcessingStartedAt != nil {
		t.Fatalf("expected no processing marker on new order")
	}
}

func TestWorkOrderDynamoRepository_RetriesUnprocessedItems(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.unprocessedOnce = true
	repo := newWorkOrderDynamoRepository(ddb, "orders")

	if err := repo.Save(context.Background(), sampleOrders(3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ddb.items) != 3 {
		t.Fatalf("expected all 3 items written after retry, got %d", len(ddb.items))
	}
	if len(ddb.batchCalls) != 2 {
		t.Fatalf("expected a retry call, got %v", ddb.batchCalls)
	}
}

func TestWorkOrderDynamoRepository_ScanFailure(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.scanErr = errors.New("connection refused")
	repo := newWorkOrderDynamoRepository(ddb, "")

	if _, err := repo.Load(context.Background()); !errors.Is(err, interfaces.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestWorkOrderDynamoRepository_Update(t *testing.T) {
	ddb := newFakeDynamo()
	repo := newWorkOrderDynamoRepository(ddb, "")
	if err := repo.Save(context.Background(), sampleOrders(2)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	t.Run("persists mutation", func(t *testing.T) {
		out, err := repo.Update(context.Background(), func(orders []entities.WorkOrder) ([]entities.WorkOrder, bool, error) {
			orders[0].Status = entities.WorkOrderStatusProcessed
			return orders, true, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out[0].Status != entities.WorkOrderStatusProcessed {
			t.Fatalf("expected returned collection to carry mutation")
		}
		loaded, _ := repo.Load(context.Background())
		if loaded[0].Status != entities.WorkOrderStatusProcessed {
			t.Fatalf("expected mutation persisted, got %s", loaded[0].Status)
		}
	})

	t.Run("mutation error skips write", func(t *testing.T) {
		before := len(ddb.batchCalls)
		boom := errors.New("boom")
		_, err := repo.Update(context.Background(), func(orders []entities.WorkOrder) ([]entities.WorkOrder, bool, error) {
			return nil, false, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if len(ddb.batchCalls) != before {
			t.Fatalf("expected no write")
		}
	})
}

func TestInvoiceDynamoRepository_AppendAndList(t *testing.T) {
	ddb := newFakeDynamo()
	repo := &InvoiceDynamoRepository{ddb: ddb, tableName: DefaultStoredInvoicesTableName}

	t1 := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	t0 := t1.Add(-time.Hour)
	for _, rec := range []entities.StoredInvoiceRecord{
		{ID: "b", InvoiceID: "INV-2", ClientEmail: "x@y.z", AmountDue: 10, DueDate: t1.Add(7 * 24 * time.Hour), Timestamp: t1},
		{ID: "a", InvoiceID: "INV-1", ClientEmail: "x@y.z", AmountDue: 20, DueDate: t0.Add(7 * 24 * time.Hour), Timestamp: t0},
	} {
		if _, err := repo.Append(context.Background(), rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].InvoiceID != "INV-1" || list[1].InvoiceID != "INV-2" {
		t.Fatalf("expected records ordered by timestamp, got %+v", list)
	}
	if !list[1].DueDate.Equal(t1.Add(7 * 24 * time.Hour)) {
		t.Fatalf("due date not round-tripped: %s", list[1].DueDate)
	}

	if _, err := repo.Append(context.Background(), entities.StoredInvoiceRecord{ID: "a"}); !errors.Is(err, interfaces.ErrStorageUnavailable) {
		t.Fatalf("expected duplicate id to be rejected, got %v", err)
	}
}

func TestBillingLogDynamoRepository_AppendAndList(t *testing.T) {
	ddb := newFakeDynamo()
	repo := &BillingLogDynamoRepository{ddb: ddb, tableName: DefaultBillingLogTableName}

	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	rec := entities.BillingInvoiceRecord{
		ID: "r1",
		Invoice: entities.Invoice{
			InvoiceID: "INV-4", ClientName: "Acme", AmountDue: 99.5, DueDate: now.Add(7 * 24 * time.Hour),
			HoursWorked: 1, HourlyRate: 99.5, Category: entities.CategoryRepair,
		},
		Provider:          "yardi-mock",
		ProviderReference: "ref-1",
		Status:            entities.DeliveryStatusSuccess,
		Timestamp:         now,
	}
	if _, err := repo.Append(context.Background(), rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one record, got %d", len(list))
	}
	got := list[0]
	if got.Invoice != rec.Invoice || got.Provider != rec.Provider || got.Status != rec.Status || !got.Timestamp.Equal(now) {
		t.Fatalf("record not round-tripped: %+v", got)
	}
}
