package mongo

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/envbind/resolve"
	"github.com/kbukum/envbind/schema"
)

// Config holds MongoDB connection configuration.
type Config struct {
	// URI is the MongoDB connection string (mongodb://host:port/...).
	URI string `validate:"required"`

	// Database is the database operations run against.
	Database string `validate:"required"`

	// ConnectTimeout bounds establishing new connections (e.g. "10s").
	ConnectTimeout string
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.ConnectTimeout == "" {
		c.ConnectTimeout = "10s"
	}
}

// Validate checks that required fields are present and parseable.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("mongo config: %w", err)
	}
	if _, err := time.ParseDuration(c.ConnectTimeout); err != nil {
		return fmt.Errorf("mongo config: connect_timeout: %w", err)
	}
	return nil
}

// hash identifies a config for client caching.
func (c Config) hash() string {
	return c.URI + "|" + c.Database + "|" + c.ConnectTimeout
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ConfigSchema declares the schema Config resolves from. The derived keys
// are MONGO_URI, MONGO_DATABASE, and MONGO_CONNECT_TIMEOUT.
func ConfigSchema() (*schema.Schema, error) {
	return schema.New("Mongo").
		String("uri").
		String("database").
		String("connect_timeout", schema.WithDefault("10s")).
		Build()
}

// FromResolved builds a Config from a resolved Mongo schema.
func FromResolved(cfg *resolve.Resolved) Config {
	return Config{
		URI:            cfg.String("uri"),
		Database:       cfg.String("database"),
		ConnectTimeout: cfg.String("connect_timeout"),
	}
}
