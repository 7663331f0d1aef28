// Печатает конфиг, который увидит сервис: .env (godotenv) + окружение (envconfig, префикс CALCULATOR).
// Пароли маскируются.
package main

import (
	"fmt"
	"io"
	"os"

	"keypadCalc/internal/app"
)

func main() {
	cfg, err := app.LoadCfg()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	printConfig(os.Stdout, cfg)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "***"
}

func printConfig(w io.Writer, cfg app.Config) {
	fmt.Fprintf(w, "Конфиг из env (префикс %s):\n", app.AppName)
	fmt.Fprintf(w, "  LogLevel:   %s\n", cfg.LogLevel)
	fmt.Fprintf(w, "  LogFile:    %s\n", cfg.LogFile)
	fmt.Fprintf(w, "  Storage:    %s\n", cfg.Storage)
	fmt.Fprintf(w, "  Session:    ttl=%s sweep=%s\n", cfg.Session.TTL, cfg.Session.SweepInterval)
	fmt.Fprintf(w, "  Server:     %s cors=%s\n", cfg.Server.Addr(), cfg.Server.CORSOrigins)
	fmt.Fprintf(w, "  Grpc:       %s\n", cfg.Grpc.Addr())
	fmt.Fprintf(w, "  DB:         host=%s port=%s user=%s password=%s dbname=%s sslmode=%s\n",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, mask(cfg.DB.Password), cfg.DB.DBName, cfg.DB.SSLMode)
	fmt.Fprintf(w, "  Mongo:      uri=%s db=%s collection=%s\n", cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
	fmt.Fprintf(w, "  Redis:      enabled=%t addr=%s db=%d password=%s ttl=%s\n",
		cfg.Redis.Enabled, cfg.Redis.Addr(), cfg.Redis.DB, mask(cfg.Redis.Password), cfg.Redis.TTL)
	fmt.Fprintf(w, "  Kafka:      enabled=%t brokers=%s topic=%s group=%s\n",
		cfg.Kafka.Enabled, cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID)
	fmt.Fprintf(w, "  ClickHouse: enabled=%t addr=%s db=%s user=%s password=%s\n",
		cfg.ClickHouse.Enabled, cfg.ClickHouse.Addr(), cfg.ClickHouse.Database, cfg.ClickHouse.Username, mask(cfg.ClickHouse.Password))
}
