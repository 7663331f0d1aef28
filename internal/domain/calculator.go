package domain

import (
	"errors"
	"time"
)

// ErrUnknownOperation возвращается, когда операция не поддерживается.
var ErrUnknownOperation = errors.New("unknown operation")

// Ошибки вычисления. На экране ErrDivideByZero показывается как "Cannot divide by 0",
// остальные: как "Error".
var (
	ErrInvalidOperand = errors.New("invalid operand")
	ErrDivideByZero   = errors.New("division by zero")
	ErrNonFinite      = errors.New("non-finite result")
)

// ErrSessionNotFound: сессии с таким id нет (не создавалась, закрыта или вычищена по TTL).
var ErrSessionNotFound = errors.New("session not found")

// Operator: ожидающая бинарная операция калькулятора.
type Operator int

// Константы арифметических операций. OpNone: оператор ещё не выбран.
const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// Символы операций: ASCII (клавиатура, ключи кэша, история) и глифы кнопок.
const (
	OpAddSymbol = "+"
	OpSubSymbol = "-"
	OpMulSymbol = "*"
	OpDivSymbol = "/"

	OpSubGlyph = "−"
	OpMulGlyph = "×"
	OpDivGlyph = "÷"
)

// ParseOperator переводит символ операции (ASCII или глиф кнопки) в Operator.
func ParseOperator(symbol string) (Operator, bool) {
	switch symbol {
	case OpAddSymbol:
		return OpAdd, true
	case OpSubSymbol, OpSubGlyph:
		return OpSubtract, true
	case OpMulSymbol, OpMulGlyph:
		return OpMultiply, true
	case OpDivSymbol, OpDivGlyph:
		return OpDivide, true
	}
	return OpNone, false
}

// Valid: одна из четырёх операций.
func (o Operator) Valid() bool {
	return o >= OpAdd && o <= OpDivide
}

// String возвращает ASCII-символ операции, для OpNone: пустую строку.
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return OpAddSymbol
	case OpSubtract:
		return OpSubSymbol
	case OpMultiply:
		return OpMulSymbol
	case OpDivide:
		return OpDivSymbol
	}
	return ""
}

// Glyph возвращает символ операции так, как он нарисован на кнопке.
func (o Operator) Glyph() string {
	switch o {
	case OpAdd:
		return OpAddSymbol
	case OpSubtract:
		return OpSubGlyph
	case OpMultiply:
		return OpMulGlyph
	case OpDivide:
		return OpDivGlyph
	}
	return ""
}

// Evaluation: запись об одном вычислении (явное "=" или цепочка при выборе следующего оператора).
type Evaluation struct {
	ID        int       `json:"id,omitempty"`
	SessionID string    `json:"session_id"`
	Operand1  string    `json:"operand1"`
	Operator  string    `json:"operator"`
	Operand2  string    `json:"operand2"`
	Result    string    `json:"result,omitempty"`
	Display   string    `json:"display"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Failed: вычисление завершилось ошибкой (деление на ноль, переполнение и т.п.).
func (e Evaluation) Failed() bool {
	return e.Error != ""
}

// Screen: то, что видит пользователь сессии после события.
type Screen struct {
	SessionID string
	Display   string
	// Accepted == false, если клавиша не распознана и событие не отправлялось.
	Accepted bool
}
