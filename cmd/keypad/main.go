// Локальный калькулятор в терминале: клавиши через пробел, по строке за раз.
//
//	$ echo "3 + 4 * 2 =" | keypad
//	3
//	...
//	14
//
// Инфраструктура не нужна: только автомат из internal/keypad.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"keypadCalc/internal/keypad"
	"keypadCalc/internal/pkg/logger"
)

func main() {
	log := logger.NewWithWriter(os.Getenv("CALCULATOR_LOG_LEVEL"), os.Stderr)
	if err := run(os.Stdin, os.Stdout, log); err != nil {
		log.Error("keypad failed", "error", err)
		os.Exit(1)
	}
}

// run читает строки из in, применяет каждую клавишу к автомату и печатает экран после каждой строки.
// Нераспознанные клавиши пропускаются с предупреждением в лог.
func run(in io.Reader, out io.Writer, log *slog.Logger) error {
	state := keypad.Initial()
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		keys := strings.Fields(sc.Text())
		if len(keys) == 0 {
			continue
		}
		for _, key := range keys {
			ev, ok := keypad.ClassifyKey(key)
			if !ok {
				log.Warn("unknown key, skipped", "key", key)
				continue
			}
			state, _ = keypad.Reduce(state, ev)
			log.Debug("key", "key", key, "kind", ev.Kind.String(), "display", state.Display)
		}
		if _, err := fmt.Fprintln(out, state.Display); err != nil {
			return err
		}
	}
	return sc.Err()
}
