package click

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Config: ClickHouse для аналитики вычислений. Переменные: CALCULATOR_CLICKHOUSE_*.
type Config struct {
	Enabled     bool          `envconfig:"ENABLED" default:"true"`
	Host        string        `envconfig:"HOST" default:"localhost"`
	Port        string        `envconfig:"PORT" default:"9000"`
	Database    string        `envconfig:"DATABASE" default:"default"`
	Username    string        `envconfig:"USERNAME" default:"default"`
	Password    string        `envconfig:"PASSWORD" default:""`
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	// Аналитические запросы (CountBySession) не должны висеть дольше этого.
	MaxExecutionTime time.Duration `envconfig:"MAX_EXECUTION_TIME" default:"30s"`
}

// Addr: "host:port" нативного протокола.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c *Config) options() *clickhouse.Options {
	opts := &clickhouse.Options{
		Addr: []string{c.Addr()},
		Auth: clickhouse.Auth{
			Database: c.Database,
			Username: c.Username,
			Password: c.Password,
		},
		DialTimeout: c.DialTimeout,
		// строки вычислений короткие и однотипные, LZ4 сжимает их почти даром
		Compression: &clickhouse.Compression{Method: clickhouse.CompressionLZ4},
	}
	if secs := int(c.MaxExecutionTime / time.Second); secs > 0 {
		opts.Settings = clickhouse.Settings{"max_execution_time": secs}
	}
	return opts
}

// Client: *sql.DB поверх драйвера clickhouse.
type Client struct {
	db *sql.DB
}

// New открывает соединение по cfg и проверяет его пингом.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	db := clickhouse.OpenDB(cfg.options())
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("clickhouse ping %s: %w", cfg.Addr(), err)
	}
	return &Client{db: db}, nil
}

func (c *Client) DB() *sql.DB {
	return c.db
}

func (c *Client) Close() error {
	return c.db.Close()
}

// Ping: для readiness.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
