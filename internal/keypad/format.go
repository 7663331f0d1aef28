package keypad

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"keypadCalc/internal/domain"
)

// Тексты экрана, которые не являются числом.
const (
	DisplayError        = "Error"
	DisplayDivideByZero = "Cannot divide by 0"
)

// maxDisplayLen: длина, после которой значение показывается в экспоненциальной форме.
const maxDisplayLen = 16

var redundantMantissa = regexp.MustCompile(`\.?0+e`)

// Format приводит значение к виду для экрана: строки до 16 символов как есть,
// длиннее: "1.23456789e+16" (8 знаков мантиссы, хвостовые нули и точка срезаются),
// нечисловые и бесконечные: "Error".
func Format(value string) string {
	if len(value) <= maxDisplayLen {
		return value
	}
	f, ok := parseOperand(value)
	if !ok {
		return DisplayError
	}
	return redundantMantissa.ReplaceAllString(toExponential(f, mantissaDigits), "e")
}

// exactDigits: точная десятичная запись любого float64 укладывается в 767 значащих цифр.
const exactDigits = 800

// mantissaDigits: знаков после точки в экспоненциальной форме экрана.
const mantissaDigits = 8

// toExponential пишет f как "d.ddde+N" с digits знаками после точки.
// Округляет точное десятичное значение, половину: от нуля.
func toExponential(f float64, digits int) string {
	exact := strconv.FormatFloat(math.Abs(f), 'e', exactDigits, 64)
	mant, expText, _ := strings.Cut(exact, "e")
	exp, _ := strconv.Atoi(expText)

	all := mant[:1] + mant[2:]
	kept := []byte(all[:digits+1])
	if all[digits+1] >= '5' {
		i := digits
		for ; i >= 0 && kept[i] == '9'; i-- {
			kept[i] = '0'
		}
		if i >= 0 {
			kept[i]++
		} else {
			kept = append([]byte{'1'}, kept[:digits]...)
			exp++
		}
	}

	var b strings.Builder
	if f < 0 {
		b.WriteByte('-')
	}
	b.WriteByte(kept[0])
	if digits > 0 {
		b.WriteByte('.')
		b.Write(kept[1:])
	}
	b.WriteByte('e')
	if exp >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}

// FormatNumber возвращает каноническую десятичную запись числа: кратчайшая точная форма,
// экспонента только для |f| >= 1e21 и |f| < 1e-6, отрицательный ноль: "0".
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ErrorText: текст экрана для ошибки вычисления.
func ErrorText(err error) string {
	if errors.Is(err, domain.ErrDivideByZero) {
		return DisplayDivideByZero
	}
	return DisplayError
}

// trimExponent убирает ведущие нули показателя: "1.5e-07" -> "1.5e-7".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}

// parseOperand разбирает текст операнда; ok == false для нечисловых и бесконечных значений.
func parseOperand(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
