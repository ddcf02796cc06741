package config

import (
	// Go Internal Packages
	"time"

	// Local Packages
	errors "pos-engine/errors"
)

const (
	SourceMongo  = "mongo"
	SourceHTTP   = "http"
	BackendKafka = "kafka"
	BackendHTTP  = "http"
)

var DefaultConfig = []byte(`
application: "pos-engine"

logger:
  level: "info"

is_prod_mode: false

source:
  kind: "mongo"

backend:
  kind: "kafka"

mongo:
  uri: "mongodb://localhost:27017"
  database: "pos"
  organization_id: 0
  timeout: "5s"

redis:
  enabled: true
  uri: "localhost:6379"
  password: ""
  catalog_key: "pos:catalog"
  catalog_ttl: "5m"

kafka:
  brokers:
    - "localhost:9092"
  topic: "pos-transactions"
  client_id: "pos-engine"

payment_api:
  base_url: "http://localhost:8083"
  api_key: ""
  timeout: "30s"

limits:
  max_amount_digits: 6
  minimum_total_cents: 5
`)

type Config struct {
	Application string     `koanf:"application"`
	Logger      Logger     `koanf:"logger"`
	IsProdMode  bool       `koanf:"is_prod_mode"`
	Source      Source     `koanf:"source"`
	Backend     Backend    `koanf:"backend"`
	Mongo       Mongo      `koanf:"mongo"`
	Redis       Redis      `koanf:"redis"`
	Kafka       Kafka      `koanf:"kafka"`
	PaymentAPI  PaymentAPI `koanf:"payment_api"`
	Limits      Limits     `koanf:"limits"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type Source struct {
	Kind string `koanf:"kind"`
}

type Backend struct {
	Kind string `koanf:"kind"`
}

type Mongo struct {
	URI            string        `koanf:"uri"`
	Database       string        `koanf:"database"`
	OrganizationID int64         `koanf:"organization_id"`
	Timeout        time.Duration `koanf:"timeout"`
}

type Redis struct {
	Enabled    bool          `koanf:"enabled"`
	URI        string        `koanf:"uri"`
	Password   string        `koanf:"password"`
	CatalogKey string        `koanf:"catalog_key"`
	CatalogTTL time.Duration `koanf:"catalog_ttl"`
}

type Kafka struct {
	Brokers  []string `koanf:"brokers"`
	Topic    string   `koanf:"topic"`
	ClientID string   `koanf:"client_id"`
}

type PaymentAPI struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
}

type Limits struct {
	MaxAmountDigits   int   `koanf:"max_amount_digits"`
	MinimumTotalCents int64 `koanf:"minimum_total_cents"`
}

// Validate validates the configuration. Connection settings are only required
// for the source and backend that are selected.
func (c *Config) Validate() error {
	ve := errors.ValidationErrs()

	if c.Application == "" {
		ve.Add("application", "cannot be empty")
	}
	if c.Logger.Level == "" {
		ve.Add("logger.level", "cannot be empty")
	}

	switch c.Source.Kind {
	case SourceMongo:
		if c.Mongo.URI == "" {
			ve.Add("mongo.uri", "cannot be empty")
		}
		if c.Mongo.Database == "" {
			ve.Add("mongo.database", "cannot be empty")
		}
		if c.Redis.Enabled && c.Redis.URI == "" {
			ve.Add("redis.uri", "cannot be empty")
		}
	case SourceHTTP:
		if c.PaymentAPI.BaseURL == "" {
			ve.Add("payment_api.base_url", "cannot be empty")
		}
	default:
		ve.Add("source.kind", "must be one of mongo, http")
	}

	switch c.Backend.Kind {
	case BackendKafka:
		if len(c.Kafka.Brokers) == 0 {
			ve.Add("kafka.brokers", "cannot be empty")
		}
		if c.Kafka.Topic == "" {
			ve.Add("kafka.topic", "cannot be empty")
		}
	case BackendHTTP:
		if c.PaymentAPI.BaseURL == "" {
			ve.Add("payment_api.base_url", "cannot be empty")
		}
	default:
		ve.Add("backend.kind", "must be one of kafka, http")
	}

	if c.Limits.MaxAmountDigits <= 0 {
		ve.Add("limits.max_amount_digits", "must be positive")
	}
	if c.Limits.MinimumTotalCents < 0 {
		ve.Add("limits.minimum_total_cents", "cannot be negative")
	}

	return ve.Err()
}
