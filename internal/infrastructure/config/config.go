package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverDynamoDB = "dynamodb"

	GatewayStripe      = "stripe"
	GatewayMercadoPago = "mercadopago"
	GatewaySandbox     = "sandbox"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Auth      AuthConfig
	Featuring FeaturingConfig
	Gateway   GatewayConfig
	RateLimit RateLimitConfig
	Jobs      JobsConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port           string
	PublicBaseURL  string
	AllowedOrigins []string
}

type StoreConfig struct {
	Driver     string
	DSN        string
	SQLitePath string
	DynamoDB   DynamoDBConfig
}

// DynamoDBConfig holds DynamoDB connection settings and table names.
type DynamoDBConfig struct {
	Region             string
	Endpoint           string
	AccessKeyID        string
	SecretAccessKey    string
	GigsTable          string
	ApplicationsTable  string
	PaymentsTable      string
	HistoryTable       string
	WebhookEventsTable string
}

type AuthConfig struct {
	JWTSecret string
}

// FeaturingConfig is the fixed featuring offer.
type FeaturingConfig struct {
	Price       decimal.Decimal
	Currency    string
	ProductName string
	SessionTTL  time.Duration
}

type GatewayConfig struct {
	Provider                 string
	Timeout                  time.Duration
	StripeSecretKey          string
	StripeWebhookSecret      string
	MercadoPagoAccessToken   string
	MercadoPagoWebhookSecret string
	SandboxWebhookSecret     string
}

type RateLimitConfig struct {
	RedisURL          string
	RequestsPerMinute int
	Burst             int
}

type JobsConfig struct {
	SweepSchedule string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	price, err := decimal.NewFromString(getEnv("FEATURED_GIG_PRICE", "9.99"))
	if err != nil {
		return nil, fmt.Errorf("FEATURED_GIG_PRICE: %w", err)
	}
	sessionTTL, err := time.ParseDuration(getEnv("FEATURED_SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("FEATURED_SESSION_TTL: %w", err)
	}
	timeout, err := time.ParseDuration(getEnv("PAYMENT_GATEWAY_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("PAYMENT_GATEWAY_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Store: StoreConfig{
			Driver:     strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
			DSN:        getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres dbname=quickgigs sslmode=disable"),
			SQLitePath: getEnv("SQLITE_PATH", "quickgigs.db"),
			DynamoDB: DynamoDBConfig{
				Region:             getEnv("AWS_REGION", "us-east-1"),
				Endpoint:           os.Getenv("DYNAMODB_ENDPOINT"),
				AccessKeyID:        getEnv("AWS_ACCESS_KEY_ID", "local"),
				SecretAccessKey:    getEnv("AWS_SECRET_ACCESS_KEY", "local"),
				GigsTable:          getEnv("GIGS_TABLE", "gigs"),
				ApplicationsTable:  getEnv("APPLICATIONS_TABLE", "applications"),
				PaymentsTable:      getEnv("PAYMENTS_TABLE", "payments"),
				HistoryTable:       getEnv("PAYMENT_HISTORY_TABLE", "payment_history"),
				WebhookEventsTable: getEnv("WEBHOOK_EVENTS_TABLE", "webhook_events"),
			},
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Featuring: FeaturingConfig{
			Price:       price,
			Currency:    strings.ToLower(getEnv("FEATURED_GIG_CURRENCY", "usd")),
			ProductName: getEnv("FEATURED_GIG_PRODUCT_NAME", "Featured Gig"),
			SessionTTL:  sessionTTL,
		},
		Gateway: GatewayConfig{
			Provider:                 strings.ToLower(getEnv("PAYMENT_GATEWAY", GatewayStripe)),
			Timeout:                  timeout,
			StripeSecretKey:          os.Getenv("STRIPE_SECRET_KEY"),
			StripeWebhookSecret:      os.Getenv("STRIPE_WEBHOOK_SECRET"),
			MercadoPagoAccessToken:   os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			MercadoPagoWebhookSecret: os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"),
			SandboxWebhookSecret:     getEnv("SANDBOX_WEBHOOK_SECRET", "sandbox-secret"),
		},
		RateLimit: RateLimitConfig{
			RedisURL:          os.Getenv("REDIS_URL"),
			RequestsPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
			Burst:             getEnvInt("RATE_LIMIT_BURST", 10),
		},
		Jobs: JobsConfig{
			SweepSchedule: getEnv("RECONCILE_SWEEP_SCHEDULE", "@every 15m"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if IsGatewayMockEnabled() {
		cfg.Gateway.Provider = GatewaySandbox
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and the selected provider's credentials.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if !c.Featuring.Price.IsPositive() {
		return fmt.Errorf("FEATURED_GIG_PRICE must be greater than zero")
	}
	if c.Gateway.Timeout <= 0 {
		return fmt.Errorf("PAYMENT_GATEWAY_TIMEOUT must be greater than zero")
	}

	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverSQLite, StoreDriverDynamoDB:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Gateway.Provider {
	case GatewayStripe:
		if c.Gateway.StripeSecretKey == "" || c.Gateway.StripeWebhookSecret == "" {
			return fmt.Errorf("STRIPE_SECRET_KEY and STRIPE_WEBHOOK_SECRET are required")
		}
	case GatewayMercadoPago:
		if c.Gateway.MercadoPagoAccessToken == "" || c.Gateway.MercadoPagoWebhookSecret == "" {
			return fmt.Errorf("MERCADOPAGO_ACCESS_TOKEN and MERCADOPAGO_WEBHOOK_SECRET are required")
		}
	case GatewaySandbox:
	default:
		return fmt.Errorf("unsupported PAYMENT_GATEWAY %q", c.Gateway.Provider)
	}
	return nil
}

// IsGatewayMockEnabled reports whether PAYMENT_GATEWAY_MOCK (or the older
// MERCADOPAGO_MOCK) asks for the local sandbox gateway.
func IsGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
