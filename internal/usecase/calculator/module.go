package calculator

import (
	"log/slog"
	"time"

	"keypadCalc/internal/domain"
	"keypadCalc/internal/ports"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// cacheKey формирует читаемый ключ вычисления для кэша, например "1 + 1".
func cacheKey(a string, op domain.Operator, b string) string {
	return a + " " + op.String() + " " + b
}

// historyLimit приводит запрошенный размер истории к допустимому диапазону.
func historyLimit(limit int) int {
	if limit <= 0 {
		return defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return limit
}

var _ ports.IKeypadUseCase = (*UseCase)(nil)

// UseCase: бизнес-логика калькулятора: сессии и их состояние, побочные эффекты вычислений.
// repo, cache, broker и analytics могут быть nil: тогда соответствующий шаг пропускается.
type UseCase struct {
	sessions  ports.ISessionStore
	repo      ports.IEvaluationRepository
	cache     ports.ICache
	broker    ports.IProducer
	analytics ports.IEvaluationAnalytics
	log       *slog.Logger
	now       func() time.Time
}

// New создаёт юзкейс калькулятора.
func New(sessions ports.ISessionStore, repo ports.IEvaluationRepository, cache ports.ICache, broker ports.IProducer, analytics ports.IEvaluationAnalytics, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{
		sessions:  sessions,
		repo:      repo,
		cache:     cache,
		broker:    broker,
		analytics: analytics,
		log:       log,
		now:       time.Now,
	}
}
