// Package app wires configuration into the stores, delivery adapters and use cases shared
// by the HTTP server and the CLI.
package app

import (
	"context"
	"fmt"
	"log"

	"workorder_invoicing/internal/adapter/persistence/filestore"
	"workorder_invoicing/internal/adapter/persistence/repository"
	"workorder_invoicing/internal/config"
	"workorder_invoicing/internal/infrastructure/assistant"
	"workorder_invoicing/internal/infrastructure/awsconfig"
	"workorder_invoicing/internal/infrastructure/database"
	"workorder_invoicing/internal/infrastructure/metrics"
	"workorder_invoicing/internal/infrastructure/notification"
	"workorder_invoicing/internal/infrastructure/payments"
	"workorder_invoicing/internal/usecase"
	"workorder_invoicing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	Config  config.Config
	Metrics *metrics.Collector

	WorkOrderRepo  interfaces.IWorkOrderRepository
	InvoiceRepo    interfaces.IInvoiceRepository
	BillingLogRepo interfaces.IBillingLogRepository

	WorkOrders  usecase.IWorkOrderUseCase
	Invoices    usecase.IInvoiceUseCase
	Delivery    usecase.IDeliveryUseCase
	Batch       usecase.IBatchProcessorUseCase
	QueryRouter usecase.IQueryRouterUseCase
	Assistant   usecase.IAssistantUseCase
}

// New builds every component selected by cfg. reg may be nil.
func New(ctx context.Context, cfg config.Config, reg *prometheus.Registry) (*App, error) {
	a := &App{Config: cfg, Metrics: metrics.NewCollector(reg)}

	var awsCfg *aws.Config
	loadAWS := func() (aws.Config, error) {
		if awsCfg != nil {
			return *awsCfg, nil
		}
		c, err := awsconfig.Load(ctx, cfg)
		if err != nil {
			return aws.Config{}, fmt.Errorf("load aws config: %w", err)
		}
		awsCfg = &c
		return c, nil
	}

	switch cfg.StorageBackend {
	case config.StorageBackendDynamoDB:
		c, err := loadAWS()
		if err != nil {
			return nil, err
		}
		ddb := database.ConnectDynamoDB(c, cfg.DynamoDBEndpoint)
		a.WorkOrderRepo = repository.NewWorkOrderDynamoRepository(ddb, cfg.WorkOrdersTable)
		a.InvoiceRepo = repository.NewInvoiceDynamoRepository(ddb, cfg.StoredInvoicesTable)
		a.BillingLogRepo = repository.NewBillingLogDynamoRepository(ddb, cfg.BillingLogTable)
	default:
		a.WorkOrderRepo = filestore.NewWorkOrderFileRepository(cfg.DataDir)
		a.InvoiceRepo = filestore.NewInvoiceFileRepository(cfg.DataDir)
		a.BillingLogRepo = filestore.NewBillingLogFileRepository(cfg.DataDir)
	}
	log.Printf("[app][wiring] storage backend=%s", cfg.StorageBackend)

	var gateway interfaces.IBillingGateway
	switch cfg.BillingProvider {
	case config.BillingProviderMercadoPago:
		mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.EmailRecipient, cfg.PaymentGatewayMock)
		if err != nil {
			return nil, fmt.Errorf("mercado pago gateway: %w", err)
		}
		gateway = mp
	default:
		gateway = payments.NewYardiMockGateway(cfg.YardiMockDelay, cfg.YardiMockFail)
	}

	var notifier interfaces.INotifier
	switch cfg.EmailProvider {
	case config.EmailProviderSES:
		c, err := loadAWS()
		if err != nil {
			return nil, err
		}
		notifier = notification.NewSESNotifier(c, cfg.EmailSender)
	default:
		notifier = notification.NewLogNotifier(cfg.EmailMockDelay)
	}
	log.Printf("[app][wiring] billing provider=%s email provider=%s", gateway.Name(), cfg.EmailProvider)

	scraper := assistant.NewScrapeClient(cfg.ScrapeAPIURL, cfg.DeliveryTimeout)
	chat := assistant.NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.DeliveryTimeout)

	a.WorkOrders = usecase.NewWorkOrderUseCase(a.WorkOrderRepo)
	a.Invoices = usecase.NewInvoiceUseCase(a.WorkOrderRepo)
	a.Delivery = usecase.NewDeliveryUseCase(gateway, a.BillingLogRepo, notifier, a.InvoiceRepo, cfg.EmailRecipient)
	a.Batch = usecase.NewBatchProcessorUseCase(a.WorkOrderRepo, a.Delivery, a.Metrics, usecase.BatchProcessorOptions{
		ClientEmail:     cfg.EmailRecipient,
		DeliveryTimeout: cfg.DeliveryTimeout,
		RecoveryAfter:   cfg.ProcessingRecoveryAfter,
	})
	a.QueryRouter = usecase.NewQueryRouterUseCase(a.WorkOrders, a.Batch, scraper, cfg.ChatFallbackDelay)
	a.Assistant = usecase.NewAssistantUseCase(scraper, chat)

	return a, nil
}
