package util

import (
	"fmt"
	"log/slog"
)

// LogError пишет ошибку в лог и возвращает её обёрнутой в message
func LogError(message string, err error) error {
	slog.Error(message, slog.Any("error", err))
	return fmt.Errorf("%s: %w", message, err)
}
