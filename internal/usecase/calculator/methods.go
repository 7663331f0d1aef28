package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"keypadCalc/internal/domain"
	"keypadCalc/internal/keypad"
)

// OpenSession заводит новую сессию с экраном "0".
func (u *UseCase) OpenSession(ctx context.Context) (*domain.Screen, error) {
	s := u.sessions.Create()
	keypadSessionsActive.Set(float64(u.sessions.Len()))
	u.log.Info("session opened", "session_id", s.ID())
	return &domain.Screen{SessionID: s.ID(), Display: s.State().Display, Accepted: true}, nil
}

// Screen возвращает текущий экран сессии.
func (u *UseCase) Screen(ctx context.Context, sessionID string) (*domain.Screen, error) {
	s, ok := u.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	return &domain.Screen{SessionID: sessionID, Display: s.State().Display, Accepted: true}, nil
}

// CloseSession удаляет сессию.
func (u *UseCase) CloseSession(ctx context.Context, sessionID string) error {
	if !u.sessions.Delete(sessionID) {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	keypadSessionsActive.Set(float64(u.sessions.Len()))
	u.log.Info("session closed", "session_id", sessionID)
	return nil
}

// SweepSessions удаляет сессии, простаивающие дольше idle. Вызывается фоновым тикером приложения.
func (u *UseCase) SweepSessions(idle time.Duration) int {
	removed := u.sessions.Sweep(idle)
	keypadSessionsActive.Set(float64(u.sessions.Len()))
	if removed > 0 {
		u.log.Info("idle sessions swept", "removed", removed)
	}
	return removed
}

// Press: нажатие клавиши клавиатуры. Нераспознанная клавиша ничего не меняет: Accepted == false.
func (u *UseCase) Press(ctx context.Context, sessionID, key string) (*domain.Screen, error) {
	ev, ok := keypad.ClassifyKey(key)
	if !ok {
		return u.ignored(ctx, sessionID)
	}
	return u.Dispatch(ctx, sessionID, ev)
}

// Push: нажатие экранной кнопки (действие и значение). Политика та же, что у Press.
func (u *UseCase) Push(ctx context.Context, sessionID, action, value string) (*domain.Screen, error) {
	ev, ok := keypad.ClassifyButton(action, value)
	if !ok {
		return u.ignored(ctx, sessionID)
	}
	return u.Dispatch(ctx, sessionID, ev)
}

// Dispatch применяет событие к сессии. Если шаг что-то вычислил: пишет историю и публикует событие в брокер.
// Ошибки истории и брокера только логируются: экран пользователя от них не зависит.
func (u *UseCase) Dispatch(ctx context.Context, sessionID string, ev keypad.Event) (*domain.Screen, error) {
	s, ok := u.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}

	machine := keypad.NewMachine(u.evaluator(ctx))
	var outcome *keypad.Outcome
	state := s.Update(func(cur keypad.State) keypad.State {
		t := machine.Step(cur, ev)
		outcome = t.Outcome
		return t.State
	})
	keypadEventsTotal.WithLabelValues(ev.Kind.String()).Inc()

	if outcome != nil {
		u.record(ctx, sessionID, outcome)
	}
	return &domain.Screen{SessionID: sessionID, Display: state.Display, Accepted: true}, nil
}

// History: последние вычисления (обвязка над репозиторием). Без хранилища: пустой список.
func (u *UseCase) History(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	if u.repo == nil {
		return []domain.Evaluation{}, nil
	}
	return u.repo.GetHistory(ctx, historyLimit(limit))
}

// HandleEvaluationEvent вызывается консьюмером при получении сообщения из топика вычислений (часть IKeypadUseCase).
func (u *UseCase) HandleEvaluationEvent(ctx context.Context, ev domain.Evaluation) error {
	if u.analytics == nil {
		u.log.Debug("analytics disabled, event dropped", "session_id", ev.SessionID)
		return nil
	}
	if err := u.analytics.WriteEvaluation(ctx, ev); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("evaluation stored to click", "operand1", ev.Operand1, "operator", ev.Operator, "operand2", ev.Operand2, "display", ev.Display)

	return nil
}

func (u *UseCase) ignored(ctx context.Context, sessionID string) (*domain.Screen, error) {
	screen, err := u.Screen(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	keypadEventsTotal.WithLabelValues("ignored").Inc()
	screen.Accepted = false
	return screen, nil
}

// evaluator возвращает вычислитель для автомата: сначала кэш, при промахе: keypad.Evaluate и запись в кэш.
// Ошибки вычисления не кэшируются, ошибки кэша считаются промахом.
func (u *UseCase) evaluator(ctx context.Context) keypad.EvalFunc {
	if u.cache == nil {
		return keypad.Evaluate
	}
	return func(a string, op domain.Operator, b string) (string, error) {
		key := cacheKey(a, op, b)
		if cached, found, err := u.cache.Get(ctx, key); err == nil && found {
			return cached, nil
		} else if err != nil {
			u.log.Warn("cache get", "key", key, "error", err)
		}

		result, err := keypad.Evaluate(a, op, b)
		if err != nil {
			return "", err
		}
		if err := u.cache.Set(ctx, key, result); err != nil {
			u.log.Warn("cache set", "key", key, "error", err)
		}
		return result, nil
	}
}

func (u *UseCase) record(ctx context.Context, sessionID string, out *keypad.Outcome) {
	ev := domain.Evaluation{
		SessionID: sessionID,
		Operand1:  out.Operand1,
		Operator:  out.Operator.String(),
		Operand2:  out.Operand2,
		Result:    out.Result,
		Display:   out.Display,
		Timestamp: u.now(),
	}
	outcome := "ok"
	if out.Err != nil {
		ev.Error = out.Err.Error()
		outcome = "error"
	}
	keypadEvaluationsTotal.WithLabelValues(outcome).Inc()

	if u.repo != nil {
		if err := u.repo.SaveEvaluation(ctx, ev); err != nil {
			u.log.Warn("history save", "session_id", sessionID, "error", err)
		} else {
			u.log.Info("evaluation saved", "session_id", sessionID, "display", ev.Display)
		}
	}

	if u.broker == nil {
		return
	}
	value, err := json.Marshal(ev)
	if err != nil {
		u.log.Warn("evaluation marshal", "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(sessionID), value); err != nil {
		u.log.Warn("broker send", "session_id", sessionID, "error", err)
	} else {
		u.log.Info("evaluation published", "session_id", sessionID, "display", ev.Display)
	}
}
