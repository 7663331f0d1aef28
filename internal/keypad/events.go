package keypad

import "keypadCalc/internal/domain"

// EventKind: вид события клавиатуры калькулятора.
type EventKind int

const (
	EventDigit EventKind = iota + 1
	EventDecimal
	EventOperator
	EventToggleSign
	EventPercent
	EventClear
	EventEquals
)

var eventKindNames = map[EventKind]string{
	EventDigit:      "digit",
	EventDecimal:    "decimal",
	EventOperator:   "operator",
	EventToggleSign: "sign",
	EventPercent:    "percent",
	EventClear:      "clear",
	EventEquals:     "equals",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event: одно классифицированное событие. Digit заполнен только для EventDigit,
// Operator: только для EventOperator.
type Event struct {
	Kind     EventKind
	Digit    byte
	Operator domain.Operator
}

// Digit: нажатие цифры '0'–'9'.
func Digit(d byte) Event { return Event{Kind: EventDigit, Digit: d} }

// Decimal: десятичная точка.
func Decimal() Event { return Event{Kind: EventDecimal} }

// ChooseOperator: выбор бинарной операции.
func ChooseOperator(op domain.Operator) Event { return Event{Kind: EventOperator, Operator: op} }

// ToggleSign: смена знака активного операнда.
func ToggleSign() Event { return Event{Kind: EventToggleSign} }

// Percent: деление активного операнда на 100.
func Percent() Event { return Event{Kind: EventPercent} }

// Clear: сброс в начальное состояние.
func Clear() Event { return Event{Kind: EventClear} }

// Equals: вычисление ожидающей операции.
func Equals() Event { return Event{Kind: EventEquals} }

func isDigit(d byte) bool {
	return d >= '0' && d <= '9'
}
