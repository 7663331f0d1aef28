package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"keypadCalc/internal/domain"
)

// IEvaluationRepository: контракт сохранения и чтения истории вычислений.
type IEvaluationRepository interface {
	SaveEvaluation(ctx context.Context, ev domain.Evaluation) error
	// GetHistory возвращает не больше limit последних вычислений, новые первыми.
	GetHistory(ctx context.Context, limit int) ([]domain.Evaluation, error)
	Ping(ctx context.Context) error
}
