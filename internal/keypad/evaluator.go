package keypad

import (
	"fmt"
	"math"

	"keypadCalc/internal/domain"
)

// noiseScale: результат округляется до 12 знаков после точки, чтобы 0.1 + 0.2 давало 0.3.
const noiseScale = 1e12

// EvalFunc вычисляет a op b над текстовыми операндами и возвращает каноническую запись результата.
type EvalFunc func(a string, op domain.Operator, b string) (string, error)

// Evaluate: вычислитель по умолчанию на float64. Деление на ноль и нечисловые операнды возвращают ошибку.
func Evaluate(a string, op domain.Operator, b string) (string, error) {
	x, ok := parseOperand(a)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidOperand, a)
	}
	y, ok := parseOperand(b)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidOperand, b)
	}

	var raw float64
	switch op {
	case domain.OpAdd:
		raw = x + y
	case domain.OpSubtract:
		raw = x - y
	case domain.OpMultiply:
		raw = x * y
	case domain.OpDivide:
		if y == 0 {
			return "", domain.ErrDivideByZero
		}
		raw = x / y
	default:
		return "", fmt.Errorf("%w: %d", domain.ErrUnknownOperation, op)
	}

	result := roundNoise(raw)
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return "", fmt.Errorf("%w: %s %s %s", domain.ErrNonFinite, a, op, b)
	}
	return FormatNumber(result), nil
}

// roundNoise округляет до 12 знаков, половину: в сторону +∞.
// Если x*1e12 переполняет float64, результат бесконечный и вычисление считается ошибкой.
func roundNoise(x float64) float64 {
	scaled := x * noiseScale
	if math.IsInf(scaled, 0) {
		return scaled
	}
	r := math.Floor(scaled)
	if scaled-r >= 0.5 {
		r++
	}
	return r / noiseScale
}
