package notifier

import (
	"context"
	"strings"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// LogNotifier пишет подтверждение в лог.
// Сам текст подтверждения пользователь получает в ответе API.
type LogNotifier struct {
	log Logger
}

// NewLogNotifier создает notifier поверх логгера
func NewLogNotifier(log Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify logs the confirmation as a single line
func (n *LogNotifier) Notify(ctx context.Context, c *domain.Confirmation) error {
	n.log.Info("Confirmation: %s", strings.ReplaceAll(c.Message(), "\n", " | "))
	return nil
}
