package ports

import (
	"time"

	"keypadCalc/internal/keypad"
)

// ISession: одна сессия калькулятора. Update выполняет fn под замком сессии,
// так что события одной сессии применяются строго по очереди.
type ISession interface {
	ID() string
	Update(fn func(s keypad.State) keypad.State) keypad.State
	State() keypad.State
}

// ISessionStore: хранилище живых сессий. Сессии живут только в памяти процесса.
type ISessionStore interface {
	Create() ISession
	Get(id string) (ISession, bool)
	Delete(id string) bool
	// Sweep удаляет сессии, простаивающие дольше idle, и возвращает их число.
	Sweep(idle time.Duration) int
	Len() int
}
