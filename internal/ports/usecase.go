package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"keypadCalc/internal/domain"
	"keypadCalc/internal/keypad"
)

// IKeypadUseCase: контракт бизнес-логики калькулятора: сессии, события клавиш, история, обработка событий из Kafka.
type IKeypadUseCase interface {
	OpenSession(ctx context.Context) (*domain.Screen, error)
	Screen(ctx context.Context, sessionID string) (*domain.Screen, error)
	CloseSession(ctx context.Context, sessionID string) error
	Press(ctx context.Context, sessionID, key string) (*domain.Screen, error)
	Push(ctx context.Context, sessionID, action, value string) (*domain.Screen, error)
	Dispatch(ctx context.Context, sessionID string, ev keypad.Event) (*domain.Screen, error)
	History(ctx context.Context, limit int) ([]domain.Evaluation, error)
	HandleEvaluationEvent(ctx context.Context, ev domain.Evaluation) error
}
