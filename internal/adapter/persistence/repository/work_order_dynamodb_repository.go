package repository

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultWorkOrdersTableName = "work_orders"

	// BatchWriteItem accepts at most 25 put requests per call.
	batchWriteLimit       = 25
	maxUnprocessedRetries = 5
)

type workOrderItem struct {
	ID                  int     `dynamodbav:"id"`
	ClientName          string  `dynamodbav:"client_name"`
	ServiceDescription  string  `dynamodbav:"service_description"`
	HoursWorked         float64 `dynamodbav:"hours_worked"`
	HourlyRate          float64 `dynamodbav:"hourly_rate"`
	TotalCost           float64 `dynamodbav:"total_cost"`
	Status              string  `dynamodbav:"status"`
	ProcessingStartedAt string  `dynamodbav:"processing_started_at,omitempty"`
}

// WorkOrderDynamoRepository persists the work order collection in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// The whole-collection contract is kept: Load scans every page, Save puts every order.
// Save never deletes items, the collection has no delete operation.
type WorkOrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string

	writeMu sync.Mutex
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *WorkOrderDynamoRepository {
	return newWorkOrderDynamoRepository(ddb, tableName)
}

func newWorkOrderDynamoRepository(ddb dynamoAPI, tableName string) *WorkOrderDynamoRepository {
	if tableName == "" {
		tableName = DefaultWorkOrdersTableName
	}
	return &WorkOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WorkOrderDynamoRepository) Load(ctx context.Context) ([]entities.WorkOrder, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	orders := make([]entities.WorkOrder, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: scan %s: %v", interfaces.ErrStorageUnavailable, r.tableName, err)
		}
		for _, raw := range page.Items {
			var it workOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, fmt.Errorf("%w: %v", interfaces.ErrMalformedData, err)
			}
			orders = append(orders, fromWorkOrderItem(it))
		}
	}

	sort.SliceStable(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (r *WorkOrderDynamoRepository) Save(ctx context.Context, orders []entities.WorkOrder) error {
	requests := make([]types.WriteRequest, 0, len(orders))
	for _, o := range orders {
		av, err := attributevalue.MarshalMap(toWorkOrderItem(o))
		if err != nil {
			return fmt.Errorf("%w: %v", interfaces.ErrMalformedData, err)
		}
		requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}

	for start := 0; start < len(requests); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(requests))
		if err := r.batchWrite(ctx, requests[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *WorkOrderDynamoRepository) batchWrite(ctx context.Context, chunk []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: chunk}
	for attempt := 0; len(pending[r.tableName]) > 0; attempt++ {
		if attempt > maxUnprocessedRetries {
			return fmt.Errorf("%w: %d work orders left unprocessed", interfaces.ErrStorageUnavailable, len(pending[r.tableName]))
		}
		if attempt > 0 {
			log.Printf("[workorder][dynamodb] retrying unprocessed items table=%s count=%d attempt=%d", r.tableName, len(pending[r.tableName]), attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
			}
		}

		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return fmt.Errorf("%w: batch write %s: %v", interfaces.ErrStorageUnavailable, r.tableName, err)
		}
		pending = out.UnprocessedItems
		if pending == nil {
			return nil
		}
	}
	return nil
}

func (r *WorkOrderDynamoRepository) Update(ctx context.Context, fn interfaces.WorkOrderMutation) ([]entities.WorkOrder, error) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	orders, err := r.Load(ctx)
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
	if err := r.Save(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func toWorkOrderItem(o entities.WorkOrder) workOrderItem {
	it := workOrderItem{
		ID:                 o.ID,
		ClientName:         o.ClientName,
		ServiceDescription: o.ServiceDescription,
		HoursWorked:        o.HoursWorked,
		HourlyRate:         o.HourlyRate,
		TotalCost:          o.TotalCost,
		Status:             string(o.Status),
	}
	if o.ProcessingStartedAt != nil {
		it.ProcessingStartedAt = formatTime(*o.ProcessingStartedAt)
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	o := entities.WorkOrder{
		ID:                 it.ID,
		ClientName:         it.ClientName,
		ServiceDescription: it.ServiceDescription,
		HoursWorked:        it.HoursWorked,
		HourlyRate:         it.HourlyRate,
		TotalCost:          it.TotalCost,
		Status:             entities.WorkOrderStatus(it.Status),
	}
	if it.ProcessingStartedAt != "" {
		t := parseTime(it.ProcessingStartedAt)
		o.ProcessingStartedAt = &t
	}
	return o
}
