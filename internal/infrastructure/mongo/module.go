package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// appName видно в db.currentOp() и логах сервера.
const appName = "keypadCalc"

// Config: MongoDB для истории вычислений. Переменные: CALCULATOR_MONGO_*.
type Config struct {
	URI            string        `envconfig:"URI" default:"mongodb://localhost:27017"`
	Database       string        `envconfig:"DATABASE" default:"keypadcalc"`
	Collection     string        `envconfig:"COLLECTION" default:"evaluations"`
	ConnectTimeout time.Duration `envconfig:"CONNECT_TIMEOUT" default:"10s"`
	MaxPoolSize    uint64        `envconfig:"MAX_POOL_SIZE" default:"16"`
}

func clientOptions(cfg *Config) *options.ClientOptions {
	opts := options.Client().ApplyURI(cfg.URI).SetAppName(appName)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout).SetServerSelectionTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	return opts
}

// Client держит соединение и коллекцию evaluations из конфига.
type Client struct {
	*mongo.Client
	evaluations *mongo.Collection
}

// New подключается по cfg.URI и ждёт ответа primary в пределах ConnectTimeout.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	client, err := mongo.Connect(clientOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping %s: %w", cfg.Database, err)
	}
	return &Client{
		Client:      client,
		evaluations: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Coll: коллекция вычислений.
func (c *Client) Coll() *mongo.Collection {
	return c.evaluations
}

func (c *Client) Close() error {
	return c.Disconnect(context.Background())
}
