package click

import (
	"context"
	"fmt"

	"keypadCalc/internal/domain"
	"keypadCalc/internal/ports"
)

var _ ports.IEvaluationAnalytics = (*EvaluationWriter)(nil)

const evaluationsAnalyticsFull = "default.keypad_evaluations"

// EvaluationWriter записывает вычисления в ClickHouse в формате, удобном для аналитики (GROUP BY operator, доля ошибок по времени).
type EvaluationWriter struct {
	db *Client
}

// NewEvaluationWriter создаёт писатель вычислений для аналитики.
func NewEvaluationWriter(db *Client) *EvaluationWriter {
	return &EvaluationWriter{db: db}
}

// EnsureTable создаёт таблицу, если её ещё нет. Вызывается один раз при старте приложения.
func (w *EvaluationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			session_id String,
			operand1 String,
			operator LowCardinality(String),
			operand2 String,
			result String,
			display String,
			failed UInt8,
			error String,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, operator)
		PARTITION BY toYYYYMM(created_at)`,
		evaluationsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteEvaluation реализует ports.IEvaluationAnalytics: пишет одно вычисление в ClickHouse.
func (w *EvaluationWriter) WriteEvaluation(ctx context.Context, ev domain.Evaluation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (session_id, operand1, operator, operand2, result, display, failed, error, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		evaluationsAnalyticsFull,
	)
	var failed uint8
	if ev.Failed() {
		failed = 1
	}
	_, err := w.db.DB().ExecContext(ctx, query,
		ev.SessionID, ev.Operand1, ev.Operator, ev.Operand2, ev.Result, ev.Display, failed, ev.Error, ev.Timestamp)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

// CountBySession возвращает число вычислений сессии (для проверок и отчётов).
func (w *EvaluationWriter) CountBySession(ctx context.Context, sessionID string) (uint64, error) {
	query := fmt.Sprintf("SELECT count() FROM %s WHERE session_id = ?", evaluationsAnalyticsFull)
	var n uint64
	if err := w.db.DB().QueryRowContext(ctx, query, sessionID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count evaluations: %w", err)
	}
	return n, nil
}
