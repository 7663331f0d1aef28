package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	apigrpc "keypadCalc/internal/api/grpc"
	apihttp "keypadCalc/internal/api/http"
	"keypadCalc/internal/infrastructure/click"
	"keypadCalc/internal/infrastructure/kafka"
	"keypadCalc/internal/infrastructure/mongo"
	"keypadCalc/internal/infrastructure/pg"
	"keypadCalc/internal/infrastructure/redis"
)

const AppName = "CALCULATOR"

// EnvFileVar: переменная с путём до .env. По умолчанию ".env" в рабочей директории.
const EnvFileVar = AppName + "_ENV_FILE"

// Хранилища истории вычислений.
const (
	StoragePG    = "pg"
	StorageMongo = "mongo"
	StorageNone  = "none"
)

// SessionConfig: время жизни сессий. Переменные: CALCULATOR_SESSION_TTL, CALCULATOR_SESSION_SWEEP_INTERVAL.
type SessionConfig struct {
	TTL           time.Duration `envconfig:"TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"` // 0: не чистить
}

// Config: конфиг приложения. Заполняется через envconfig с префиксом CALCULATOR.
type Config struct {
	LogLevel   string               `envconfig:"LOG_LEVEL" default:"info"`
	LogFile    string               `envconfig:"LOG_FILE" default:"app.log"`
	Storage    string               `envconfig:"STORAGE" default:"pg"`
	Session    SessionConfig        `envconfig:"SESSION"`
	Server     apihttp.ServerConfig `envconfig:"SERVER"`
	Grpc       apigrpc.Config       `envconfig:"GRPC"`
	DB         pg.Config            `envconfig:"DB"`
	Mongo      mongo.Config         `envconfig:"MONGO"`
	Redis      redis.Config         `envconfig:"REDIS"`
	Kafka      kafka.Config         `envconfig:"KAFKA"`
	ClickHouse click.Config         `envconfig:"CLICKHOUSE"`
}

// Validate проверяет значения, которые envconfig проверить не может.
func (c Config) Validate() error {
	switch c.Storage {
	case StoragePG, StorageMongo, StorageNone:
	default:
		return fmt.Errorf("unknown storage %q: want %s, %s or %s", c.Storage, StoragePG, StorageMongo, StorageNone)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.Session.TTL)
	}
	return nil
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
// Переменные окружения важнее .env: godotenv.Load не перезаписывает уже заданные.
func LoadCfg() (Config, error) {
	envFile := os.Getenv(EnvFileVar)
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		slog.Debug("config: env file not loaded, using environment", "file", envFile, "error", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
