package sl

import (
	"log/slog"
)

func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Discard - логгер для тестов и компонентов без вывода
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
