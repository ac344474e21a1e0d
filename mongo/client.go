package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kbukum/envbind/logger"
)

// Underlying driver clients are cached per config hash and shared, so two
// Clients built from identical configs reuse one connection pool for the
// process lifetime.
var (
	clientsMu sync.Mutex
	clients   = map[string]*mongodrv.Client{}
)

// Client wraps a MongoDB driver client with envbind logging. The driver
// client is obtained lazily on first use.
type Client struct {
	cfg Config
	log *logger.Logger
}

// New creates a Mongo client wrapper. No connection is established until
// the first operation.
func New(cfg Config, log *logger.Logger) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{cfg: cfg, log: log}, nil
}

func (c *Client) connect(ctx context.Context) (*mongodrv.Client, error) {
	clientsMu.Lock()
	defer clientsMu.Unlock()

	key := c.cfg.hash()
	if cl, ok := clients[key]; ok {
		return cl, nil
	}

	timeout, _ := time.ParseDuration(c.cfg.ConnectTimeout) // validated in New
	opts := options.Client().ApplyURI(c.cfg.URI).SetConnectTimeout(timeout)

	cl, err := mongodrv.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: connecting for database %s: %w", c.cfg.Database, err)
	}
	clients[key] = cl

	c.log.Debug("mongo client created", map[string]interface{}{
		"database": c.cfg.Database,
	})
	return cl, nil
}

// Database returns the configured database handle.
func (c *Client) Database(ctx context.Context) (*mongodrv.Database, error) {
	cl, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	return cl.Database(c.cfg.Database), nil
}

// Ping verifies the deployment is reachable.
func (c *Client) Ping(ctx context.Context) error {
	cl, err := c.connect(ctx)
	if err != nil {
		return err
	}
	if err := cl.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}
