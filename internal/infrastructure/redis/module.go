package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config: Redis для кэша вычислений. Переменные: CALCULATOR_REDIS_*.
type Config struct {
	Enabled  bool          `envconfig:"ENABLED" default:"true"`
	Host     string        `envconfig:"HOST" default:"localhost"`
	Port     string        `envconfig:"PORT" default:"6379"`
	Password string        `envconfig:"PASSWORD" default:""`
	DB       int           `envconfig:"DB" default:"0"`
	TTL      time.Duration `envconfig:"TTL" default:"24h"` // 0: без срока жизни

	// Кэш необязателен: медленный Redis не должен тормозить нажатия клавиш.
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"2s"`
	OpTimeout   time.Duration `envconfig:"OP_TIMEOUT" default:"200ms"`
	PoolSize    int           `envconfig:"POOL_SIZE" default:"10"`
}

// Addr: "host:port".
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c *Config) options() *redis.Options {
	return &redis.Options{
		Addr:         c.Addr(),
		Password:     c.Password,
		DB:           c.DB,
		ClientName:   "keypadCalc",
		DialTimeout:  c.DialTimeout,
		ReadTimeout:  c.OpTimeout,
		WriteTimeout: c.OpTimeout,
		PoolSize:     c.PoolSize,
	}
}

// Client: соединение с Redis для Cache.
type Client struct {
	*redis.Client
}

// New подключается по cfg и проверяет ответ PING.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	cli := redis.NewClient(cfg.options())
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr(), err)
	}
	return &Client{Client: cli}, nil
}

// Ping: для readiness.
func (c *Client) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}
