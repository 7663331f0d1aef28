// Package keypad: автомат ввода калькулятора: события клавиш -> новое состояние и строка экрана.
// Пакет чистый: не хранит глобального состояния и не делает ввода-вывода.
package keypad

import (
	"strings"

	"keypadCalc/internal/domain"
)

// State: состояние калькулятора с двумя операндами.
// Активный операнд: Second, если выбран оператор, иначе First.
type State struct {
	First     string
	Operator  domain.Operator
	Second    string
	Overwrite bool
	// Display: последняя показанная строка; не меняется на событиях без эффекта.
	Display string
}

// Initial возвращает начальное состояние: "0", без оператора.
func Initial() State {
	return State{First: "0", Display: "0"}
}

// Active возвращает текст активного операнда; пустой второй операнд читается как "0".
func (s State) Active() string {
	if s.Operator == domain.OpNone {
		return s.First
	}
	if s.Second == "" {
		return "0"
	}
	return s.Second
}

func (s *State) setActive(v string) {
	if s.Operator == domain.OpNone {
		s.First = v
	} else {
		s.Second = v
	}
	s.Display = Format(v)
}

func (s State) normalized() State {
	if s.First == "" {
		s.First = "0"
	}
	if s.Display == "" {
		s.Display = Format(s.Active())
	}
	return s
}

// Outcome: результат вычисления, случившегося во время шага.
type Outcome struct {
	Operand1 string
	Operator domain.Operator
	Operand2 string
	// Result: каноническая запись результата, пустая при ошибке.
	Result  string
	Err     error
	Display string
}

// Transition: итог одного шага автомата.
type Transition struct {
	State   State
	Display string
	// Outcome != nil, если шаг вычислил ожидающую операцию ("=" или цепочка).
	Outcome *Outcome
}

// Machine применяет события к состоянию. Нулевое значение готово к работе и считает через Evaluate.
type Machine struct {
	eval EvalFunc
}

// NewMachine создаёт автомат с заданным вычислителем (nil: Evaluate).
func NewMachine(eval EvalFunc) Machine {
	return Machine{eval: eval}
}

// Reduce применяет событие к состоянию вычислителем по умолчанию.
func Reduce(s State, ev Event) (State, string) {
	t := Machine{}.Step(s, ev)
	return t.State, t.Display
}

// Step применяет одно событие. Невалидные события (не цифра, неизвестный оператор) ничего не меняют.
func (m Machine) Step(s State, ev Event) Transition {
	t := Transition{State: s.normalized()}
	st := &t.State

	switch ev.Kind {
	case EventDigit:
		if isDigit(ev.Digit) {
			st.digit(ev.Digit)
		}
	case EventDecimal:
		st.decimal()
	case EventOperator:
		if ev.Operator.Valid() {
			m.chooseOperator(&t, ev.Operator)
		}
	case EventToggleSign:
		st.toggleSign()
	case EventPercent:
		st.percent()
	case EventClear:
		t.State = Initial()
	case EventEquals:
		m.equals(&t)
	}

	t.Display = t.State.Display
	return t
}

func (s *State) takeActive() string {
	cur := s.Active()
	if s.Overwrite {
		s.Overwrite = false
		cur = "0"
	}
	return cur
}

func (s *State) digit(d byte) {
	cur := s.takeActive()
	if cur == "0" {
		cur = string(d)
	} else {
		cur += string(d)
	}
	s.setActive(cur)
}

func (s *State) decimal() {
	cur := s.takeActive()
	if !strings.Contains(cur, ".") {
		s.setActive(cur + ".")
	}
}

func (s *State) toggleSign() {
	cur := s.Active()
	if cur == "0" {
		return
	}
	if strings.HasPrefix(cur, "-") {
		s.setActive(cur[1:])
		return
	}
	s.setActive("-" + cur)
}

func (s *State) percent() {
	f, ok := parseOperand(s.Active())
	if !ok {
		return
	}
	s.setActive(FormatNumber(f / 100))
}

func (m Machine) chooseOperator(t *Transition, op domain.Operator) {
	s := &t.State
	if s.Operator != domain.OpNone && s.Second == "" {
		s.Operator = op
		return
	}
	if s.Operator != domain.OpNone {
		m.equals(t)
	}
	s.Operator = op
	s.Overwrite = false
}

func (m Machine) equals(t *Transition) {
	s := &t.State
	if s.Operator == domain.OpNone || s.Second == "" {
		return
	}

	eval := m.eval
	if eval == nil {
		eval = Evaluate
	}
	out := &Outcome{Operand1: s.First, Operator: s.Operator, Operand2: s.Second}
	out.Result, out.Err = eval(s.First, s.Operator, s.Second)
	if out.Err != nil {
		out.Result = ""
		out.Display = ErrorText(out.Err)
		s.First = "0"
	} else {
		out.Display = Format(out.Result)
		s.First = out.Result
	}

	s.Display = out.Display
	s.Operator = domain.OpNone
	s.Second = ""
	s.Overwrite = true
	t.Outcome = out
}
