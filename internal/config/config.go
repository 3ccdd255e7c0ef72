// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageBackendFile     = "file"
	StorageBackendDynamoDB = "dynamodb"

	BillingProviderYardiMock   = "yardi-mock"
	BillingProviderMercadoPago = "mercadopago"

	EmailProviderLog = "log"
	EmailProviderSES = "ses"
)

type Config struct {
	Port    string
	DataDir string

	StorageBackend      string
	WorkOrdersTable     string
	StoredInvoicesTable string
	BillingLogTable     string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	BillingProvider        string
	YardiMockDelay         time.Duration
	YardiMockFail          bool
	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	EmailProvider  string
	EmailSender    string
	EmailRecipient string
	EmailMockDelay time.Duration

	ScrapeAPIURL  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	DeliveryTimeout         time.Duration
	ProcessingRecoveryAfter time.Duration
	ChatFallbackDelay       time.Duration
}

// Load builds a Config from environment variables, applying defaults for anything unset.
func Load() (Config, error) {
	var errs []string
	duration := func(key string, def time.Duration) time.Duration {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			errs = append(errs, fmt.Sprintf("%s=%q is not a valid duration", key, v))
			return def
		}
		return d
	}

	cfg := Config{
		Port:    getenvDefault("PORT", "8080"),
		DataDir: getenvDefault("DATA_DIR", "data"),

		StorageBackend:      strings.ToLower(getenvDefault("STORAGE_BACKEND", StorageBackendFile)),
		WorkOrdersTable:     getenvDefault("WORK_ORDERS_TABLE", "work_orders"),
		StoredInvoicesTable: getenvDefault("STORED_INVOICES_TABLE", "stored_invoices"),
		BillingLogTable:     getenvDefault("BILLING_LOG_TABLE", "billing_invoice_log"),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		BillingProvider:        strings.ToLower(getenvDefault("BILLING_PROVIDER", BillingProviderYardiMock)),
		YardiMockDelay:         duration("YARDI_MOCK_DELAY", time.Second),
		YardiMockFail:          isTruthy(os.Getenv("YARDI_MOCK_FAIL")),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),

		EmailProvider:  strings.ToLower(getenvDefault("EMAIL_PROVIDER", EmailProviderLog)),
		EmailSender:    os.Getenv("EMAIL_SENDER"),
		EmailRecipient: getenvDefault("EMAIL_RECIPIENT", "client@example.com"),
		EmailMockDelay: duration("EMAIL_MOCK_DELAY", time.Second),

		ScrapeAPIURL:  strings.TrimRight(getenvDefault("SCRAPE_API_URL", "http://localhost:5000"), "/"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: strings.TrimRight(getenvDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"), "/"),
		OpenAIModel:   getenvDefault("OPENAI_MODEL", "gpt-4"),

		DeliveryTimeout:         duration("DELIVERY_TIMEOUT", 10*time.Second),
		ProcessingRecoveryAfter: duration("PROCESSING_RECOVERY_AFTER", 15*time.Minute),
		ChatFallbackDelay:       duration("CHAT_FALLBACK_DELAY", 3*time.Second),
	}

	switch cfg.StorageBackend {
	case StorageBackendFile, StorageBackendDynamoDB:
	default:
		errs = append(errs, fmt.Sprintf("STORAGE_BACKEND=%q must be %s or %s", cfg.StorageBackend, StorageBackendFile, StorageBackendDynamoDB))
	}
	switch cfg.BillingProvider {
	case BillingProviderYardiMock, BillingProviderMercadoPago:
	default:
		errs = append(errs, fmt.Sprintf("BILLING_PROVIDER=%q must be %s or %s", cfg.BillingProvider, BillingProviderYardiMock, BillingProviderMercadoPago))
	}
	switch cfg.EmailProvider {
	case EmailProviderLog:
	case EmailProviderSES:
		if cfg.EmailSender == "" {
			errs = append(errs, "EMAIL_SENDER is required when EMAIL_PROVIDER=ses")
		}
	default:
		errs = append(errs, fmt.Sprintf("EMAIL_PROVIDER=%q must be %s or %s", cfg.EmailProvider, EmailProviderLog, EmailProviderSES))
	}
	if cfg.DeliveryTimeout == 0 {
		errs = append(errs, "DELIVERY_TIMEOUT must be positive")
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return false
}
