package keypad

import "keypadCalc/internal/domain"

// Действия экранных кнопок (data-action).
const (
	ActionDigit    = "digit"
	ActionDecimal  = "decimal"
	ActionOperator = "operator"
	ActionEquals   = "equals"
	ActionSign     = "sign"
	ActionPercent  = "percent"
	ActionClear    = "clear"
)

// ClassifyKey переводит клавишу клавиатуры в событие. ok == false: клавиша не наша, событие не отправляется.
func ClassifyKey(key string) (Event, bool) {
	if len(key) == 1 && isDigit(key[0]) {
		return Digit(key[0]), true
	}
	if op, ok := domain.ParseOperator(key); ok {
		return ChooseOperator(op), true
	}
	switch key {
	case ".":
		return Decimal(), true
	case "Enter", "=":
		return Equals(), true
	case "Escape":
		return Clear(), true
	case "%":
		return Percent(), true
	case "p", "P":
		return ToggleSign(), true
	}
	return Event{}, false
}

// ClassifyButton переводит нажатие экранной кнопки (действие и значение) в событие.
// Значение нужно только цифрам (одна цифра) и операторам (символ или глиф).
func ClassifyButton(action, value string) (Event, bool) {
	switch action {
	case ActionDigit:
		if len(value) == 1 && isDigit(value[0]) {
			return Digit(value[0]), true
		}
	case ActionOperator:
		if op, ok := domain.ParseOperator(value); ok {
			return ChooseOperator(op), true
		}
	case ActionDecimal:
		return Decimal(), true
	case ActionEquals:
		return Equals(), true
	case ActionSign:
		return ToggleSign(), true
	case ActionPercent:
		return Percent(), true
	case ActionClear:
		return Clear(), true
	}
	return Event{}, false
}
