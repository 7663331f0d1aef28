package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// logWriter открывает файл file и возвращает writer в файл + console (и в файл, и в консоль).
// Пустое имя: только console. Ошибка открытия файла: только console и одно предупреждение в неё.
func logWriter(file string, console io.Writer) io.Writer {
	if file == "" {
		return console
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		slog.New(slog.NewTextHandler(console, nil)).Warn("cannot open log file, logging to stderr only",
			"file", file, "error", err)
		return console
	}
	return io.MultiWriter(f, console)
}

// ParseLevel переводит строку уровня (debug, info, warn, error) в slog.Level. Неизвестное значение: Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New возвращает логгер с текстовым выводом в файл file (плюс stderr) и заданным уровнем.
func New(level, file string) *slog.Logger {
	return NewWithWriter(level, logWriter(file, os.Stderr))
}

// NewWithWriter: то же, что New, но с произвольным writer (тесты, CLI).
func NewWithWriter(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}
