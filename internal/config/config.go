package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Storage string `validate:"required,oneof=postgres memory"`

	// Kafka and Postgres are validated only when enabled.
	Kafka    Kafka    `validate:"-"`
	Postgres Postgres `validate:"-"`

	Cache     Cache
	Payment   Payment
	Checkout  Checkout
	Inventory Inventory
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,port"`
}

type Kafka struct {
	Enabled bool
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`

	StockTopic  string `validate:"required"`
	EventsTopic string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	Migrate bool
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

// Payment configures the card gateway. An empty GatewayURL selects the
// built-in simulator.
type Payment struct {
	GatewayURL string        `validate:"omitempty,url"`
	Timeout    time.Duration `validate:"gt=0"`
}

type Checkout struct {
	ActionTimeout time.Duration `validate:"gte=0"`
	TaxRate       decimal.Decimal
}

type Inventory struct {
	RetryAttempts     int           `validate:"gte=1"`
	RetryInitialDelay time.Duration `validate:"gt=0"`
	RetryMaxDelay     time.Duration `validate:"gte=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Storage: env("STORAGE", StoragePostgres),

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", true),
			GroupID: env("KAFKA_GROUP_ID", "fulfillment-service"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			StockTopic:  env("KAFKA_STOCK_TOPIC", "stock-adjustments"),
			EventsTopic: env("KAFKA_EVENTS_TOPIC", "order-events"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "fulfillment"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			Migrate: envBool("POSTGRES_MIGRATE", true),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Payment: Payment{
			GatewayURL: env("PAYMENT_GATEWAY_URL", ""),
			Timeout:    envDuration("PAYMENT_GATEWAY_TIMEOUT", 5*time.Second),
		},

		Checkout: Checkout{
			ActionTimeout: envDuration("CHECKOUT_ACTION_TIMEOUT", 10*time.Second),
			TaxRate:       envDecimal("CHECKOUT_TAX_RATE", decimal.Zero),
		},

		Inventory: Inventory{
			RetryAttempts:     envInt("INVENTORY_RETRY_ATTEMPTS", 5),
			RetryInitialDelay: envDuration("INVENTORY_RETRY_INITIAL_DELAY", 20*time.Millisecond),
			RetryMaxDelay:     envDuration("INVENTORY_RETRY_MAX_DELAY", time.Second),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Storage == StoragePostgres {
		if err := validate.Struct(c.Postgres); err != nil {
			return err
		}
	}
	if c.Kafka.Enabled {
		if err := validate.Struct(c.Kafka); err != nil {
			return err
		}
	}
	return nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		d, err := decimal.NewFromString(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
