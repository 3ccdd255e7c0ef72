package repository

import (
	"context"
	"fmt"
	"sort"

	"workorder_invoicing/internal/domain/entities"
	"workorder_invoicing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultStoredInvoicesTableName = "stored_invoices"
	DefaultBillingLogTableName     = "billing_invoice_log"
)

type storedInvoiceItem struct {
	ID                 string  `dynamodbav:"id"`
	ClientEmail        string  `dynamodbav:"client_email"`
	InvoiceID          string  `dynamodbav:"invoice_id"`
	ClientName         string  `dynamodbav:"client_name"`
	ServiceDescription string  `dynamodbav:"service_description"`
	AmountDue          float64 `dynamodbav:"amount_due"`
	DueDate            string  `dynamodbav:"due_date"`
	Timestamp          string  `dynamodbav:"timestamp"`
}

type billingLogItem struct {
	ID                 string  `dynamodbav:"id"`
	InvoiceID          string  `dynamodbav:"invoice_id"`
	ClientName         string  `dynamodbav:"client_name"`
	ServiceDescription string  `dynamodbav:"service_description"`
	AmountDue          float64 `dynamodbav:"amount_due"`
	DueDate            string  `dynamodbav:"due_date"`
	HoursWorked        float64 `dynamodbav:"hours_worked"`
	HourlyRate         float64 `dynamodbav:"hourly_rate"`
	Category           string  `dynamodbav:"category,omitempty"`
	Provider           string  `dynamodbav:"provider"`
	ProviderReference  string  `dynamodbav:"provider_reference,omitempty"`
	Status             string  `dynamodbav:"status"`
	Timestamp          string  `dynamodbav:"timestamp"`
}

// InvoiceDynamoRepository is the invoice store in DynamoDB.
//
// Table requirements:
//   - PK: id (string, one per appended record)
type InvoiceDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client, tableName string) *InvoiceDynamoRepository {
	if tableName == "" {
		tableName = DefaultStoredInvoicesTableName
	}
	return &InvoiceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *InvoiceDynamoRepository) Append(ctx context.Context, rec entities.StoredInvoiceRecord) (entities.StoredInvoiceRecord, error) {
	av, err := attributevalue.MarshalMap(storedInvoiceItem{
		ID:                 rec.ID,
		ClientEmail:        rec.ClientEmail,
		InvoiceID:          rec.InvoiceID,
		ClientName:         rec.ClientName,
		ServiceDescription: rec.ServiceDescription,
		AmountDue:          rec.AmountDue,
		DueDate:            formatTime(rec.DueDate),
		Timestamp:          formatTime(rec.Timestamp),
	})
	if err != nil {
		return entities.StoredInvoiceRecord{}, fmt.Errorf("%w: %v", interfaces.ErrMalformedData, err)
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.StoredInvoiceRecord{}, err
	}
	return rec, nil
}

func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.StoredInvoiceRecord, error) {
	var items []storedInvoiceItem
	if err := scanAll(ctx, r.ddb, r.tableName, &items); err != nil {
		return nil, err
	}
	out := make([]entities.StoredInvoiceRecord, 0, len(items))
	for _, it := range items {
		out = append(out, entities.StoredInvoiceRecord{
			ID:                 it.ID,
			ClientEmail:        it.ClientEmail,
			InvoiceID:          it.InvoiceID,
			ClientName:         it.ClientName,
			ServiceDescription: it.ServiceDescription,
			AmountDue:          it.AmountDue,
			DueDate:            parseTime(it.DueDate),
			Timestamp:          parseTime(it.Timestamp),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

// BillingLogDynamoRepository is the billing-system log in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type BillingLogDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IBillingLogRepository = (*BillingLogDynamoRepository)(nil)

func NewBillingLogDynamoRepository(ddb *dynamodb.Client, tableName string) *BillingLogDynamoRepository {
	if tableName == "" {
		tableName = DefaultBillingLogTableName
	}
	return &BillingLogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BillingLogDynamoRepository) Append(ctx context.Context, rec entities.BillingInvoiceRecord) (entities.BillingInvoiceRecord, error) {
	inv := rec.Invoice
	av, err := attributevalue.MarshalMap(billingLogItem{
		ID:                 rec.ID,
		InvoiceID:          inv.InvoiceID,
		ClientName:         inv.ClientName,
		ServiceDescription: inv.ServiceDescription,
		AmountDue:          inv.AmountDue,
		DueDate:            formatTime(inv.DueDate),
		HoursWorked:        inv.HoursWorked,
		HourlyRate:         inv.HourlyRate,
		Category:           string(inv.Category),
		Provider:           rec.Provider,
		ProviderReference:  rec.ProviderReference,
		Status:             string(rec.Status),
		Timestamp:          formatTime(rec.Timestamp),
	})
	if err != nil {
		return entities.BillingInvoiceRecord{}, fmt.Errorf("%w: %v", interfaces.ErrMalformedData, err)
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.BillingInvoiceRecord{}, err
	}
	return rec, nil
}

func (r *BillingLogDynamoRepository) List(ctx context.Context) ([]entities.BillingInvoiceRecord, error) {
	var items []billingLogItem
	if err := scanAll(ctx, r.ddb, r.tableName, &items); err != nil {
		return nil, err
	}
	out := make([]entities.BillingInvoiceRecord, 0, len(items))
	for _, it := range items {
		out = append(out, entities.BillingInvoiceRecord{
			ID: it.ID,
			Invoice: entities.Invoice{
				InvoiceID:          it.InvoiceID,
				ClientName:         it.ClientName,
				ServiceDescription: it.ServiceDescription,
				AmountDue:          it.AmountDue,
				DueDate:            parseTime(it.DueDate),
				HoursWorked:        it.HoursWorked,
				HourlyRate:         it.HourlyRate,
				Category:           entities.Category(it.Category),
			},
			Provider:          it.Provider,
			ProviderReference: it.ProviderReference,
			Status:            entities.DeliveryStatus(it.Status),
			Timestamp:         parseTime(it.Timestamp),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func putNew(ctx context.Context, ddb dynamoAPI, table string, av map[string]types.AttributeValue) error {
	_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return fmt.Errorf("%w: put %s: %v", interfaces.ErrStorageUnavailable, table, err)
	}
	return nil
}

func scanAll[T any](ctx context.Context, ddb dynamoAPI, table string, out *[]T) error {
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{TableName: aws.String(table)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("%w: scan %s: %v", interfaces.ErrStorageUnavailable, table, err)
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return fmt.Errorf("%w: %v", interfaces.ErrMalformedData, err)
		}
		*out = append(*out, items...)
	}
	return nil
}
