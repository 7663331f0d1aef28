package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apigrpc "keypadCalc/internal/api/grpc"
	apihttp "keypadCalc/internal/api/http"
	"keypadCalc/internal/api/http/controllers/calculator"
	"keypadCalc/internal/api/http/controllers/system"
	"keypadCalc/internal/infrastructure/click"
	"keypadCalc/internal/infrastructure/kafka"
	"keypadCalc/internal/infrastructure/memory"
	"keypadCalc/internal/infrastructure/mongo"
	"keypadCalc/internal/infrastructure/pg"
	"keypadCalc/internal/infrastructure/redis"
	"keypadCalc/internal/pkg/logger"
	"keypadCalc/internal/ports"
	calcUsecase "keypadCalc/internal/usecase/calculator"
)

// App: приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// deps: собранные адаптеры. Выключенные в конфиге остаются nil-интерфейсами.
type deps struct {
	repo      ports.IEvaluationRepository
	cache     ports.ICache
	broker    ports.IProducer
	analytics ports.IEvaluationAnalytics
	closers   []func() error
}

func (d *deps) close(log *slog.Logger) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			log.Warn("close dependency", "error", err)
		}
	}
}

// Run подключает инфраструктуру, инициализирует зависимости и запускает HTTP- и gRPC-серверы (блокирующий вызов).
func (a *App) Run() error {
	log := logger.New(a.cfg.LogLevel, a.cfg.LogFile)
	slog.SetDefault(log)

	// close регистрируется раньше stop: при выходе сначала отменяется ctx (consumer и sweeper завершаются), затем закрываются ресурсы.
	d := &deps{}
	defer d.close(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := a.connect(ctx, d, log); err != nil {
		return err
	}

	sessions := memory.NewSessionStore()
	uc := calcUsecase.New(sessions, d.repo, d.cache, d.broker, d.analytics, log)

	go runSweeper(ctx, a.cfg.Session.SweepInterval, a.cfg.Session.TTL, uc.SweepSessions)

	if a.cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
		d.closers = append(d.closers, consumer.Close)
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	grpcSrv := apigrpc.NewServer(a.cfg.Grpc.Addr(), uc, log)
	go func() {
		if err := grpcSrv.Start(); err != nil {
			log.Error("grpc server failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(d.repo, log),
		calculator.New(uc, log))

	log.Info("application started",
		"http", a.cfg.Server.Addr(),
		"grpc", a.cfg.Grpc.Addr(),
		"storage", a.cfg.Storage,
		"cache", d.cache != nil,
		"broker", d.broker != nil,
		"analytics", d.analytics != nil,
	)

	if err := srv.Start(ctx); err != nil {
		return err
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return grpcSrv.Stop(shutdownCtx)
}

// connect поднимает включённые в конфиге адаптеры. Каждый открытый ресурс регистрирует свой Close в d.closers.
func (a *App) connect(ctx context.Context, d *deps, log *slog.Logger) error {
	switch a.cfg.Storage {
	case StoragePG:
		db, err := pg.New(ctx, &a.cfg.DB)
		if err != nil {
			return fmt.Errorf("db: %w", err)
		}
		d.closers = append(d.closers, db.Close)
		if err := pg.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		d.repo = pg.NewEvaluationRepo(db, log)
	case StorageMongo:
		mc, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return fmt.Errorf("mongo: %w", err)
		}
		d.closers = append(d.closers, mc.Close)
		d.repo = mongo.NewEvaluationRepo(mc, log)
	}

	if a.cfg.Redis.Enabled {
		rdb, err := redis.New(ctx, &a.cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		d.closers = append(d.closers, rdb.Close)
		d.cache = redis.NewCache(rdb, a.cfg.Redis.TTL, log)
	}

	if a.cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&a.cfg.Kafka)
		d.closers = append(d.closers, producer.Close)
		d.broker = producer
	}

	if a.cfg.ClickHouse.Enabled {
		ch, err := click.New(ctx, &a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		d.closers = append(d.closers, ch.Close)
		writer := click.NewEvaluationWriter(ch)
		if err := writer.EnsureTable(ctx); err != nil {
			return fmt.Errorf("clickhouse ensure table: %w", err)
		}
		d.analytics = writer
	}
	return nil
}

// runSweeper раз в interval удаляет сессии, простаивающие дольше ttl. Выход по отмене ctx.
func runSweeper(ctx context.Context, interval, ttl time.Duration, sweep func(time.Duration) int) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			sweep(ttl)
		}
	}
}
