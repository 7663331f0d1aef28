package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"keypadCalc/internal/domain"
	"keypadCalc/internal/ports"
)

// Consumer читает события вычислений из топика и передаёт их в use case.
type Consumer struct {
	r   *kafka.Reader
	uc  ports.IKeypadUseCase
	log *slog.Logger
}

// NewConsumer: консьюмер группы cfg.GroupID. Закрывать через Close.
func NewConsumer(cfg *Config, uc ports.IKeypadUseCase, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log
	return c
}

// Run обрабатывает сообщения до отмены ctx или ошибки брокера.
// Сообщение коммитится, если событие обработано или не декодируется.
// Ошибка обработки оставляет offset на месте: после ребаланса событие придёт снова.
func (c *Consumer) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			return c.stop(ctx, "fetch", err)
		}
		if !c.handle(ctx, msg) {
			continue
		}
		if err := c.r.CommitMessages(ctx, msg); err != nil {
			return c.stop(ctx, "commit", err)
		}
	}
	return ctx.Err()
}

// handle сообщает, можно ли коммитить msg.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message) bool {
	log := c.log.With("session_id", string(msg.Key), "partition", msg.Partition, "offset", msg.Offset)

	var ev domain.Evaluation
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		log.Warn("evaluation event malformed, skipped", "error", err)
		return true
	}
	if err := c.uc.HandleEvaluationEvent(ctx, ev); err != nil {
		log.Warn("evaluation event not handled, left uncommitted", "error", err)
		return false
	}
	return true
}

func (c *Consumer) stop(ctx context.Context, stage string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	c.log.Error("kafka consumer stopped", "stage", stage, "error", err)
	return err
}

func (c *Consumer) Close() error {
	return c.r.Close()
}
