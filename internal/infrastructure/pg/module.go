package pg

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"time"

	_ "github.com/lib/pq"
)

// Config: PostgreSQL для истории вычислений. Переменные: CALCULATOR_DB_*.
type Config struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5433"`
	User     string `envconfig:"USER" default:"postgres"`
	Password string `envconfig:"PASSWORD" default:"postgres"`
	DBName   string `envconfig:"NAME" default:"keypadcalc"`
	SSLMode  string `envconfig:"SSLMODE" default:"disable"`

	// История пишется по одной строке на вычисление, большой пул не нужен.
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"8"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
}

// DSN: URL для lib/pq, логин и пароль экранируются.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

// DB: пул соединений с таблицей evaluations.
type DB struct {
	*sql.DB
}

// New открывает пул по cfg и ждёт первого ответа сервера.
func New(ctx context.Context, cfg *Config) (*DB, error) {
	conn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("pg open %s: %w", cfg.Host, err)
	}
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("pg ping %s/%s: %w", cfg.Host, cfg.DBName, err)
	}
	return &DB{conn}, nil
}

// Ping: для readiness.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}
