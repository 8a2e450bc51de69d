package submit_form

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
)

// Validator интерфейс валидатора формы
type Validator interface {
	Validate(form *domain.Form, today time.Time) domain.FieldErrors
	CitySelection() bool
}

// CityCatalog интерфейс каталога городов
type CityCatalog interface {
	Label(value string) string
}

// Notifier доставляет подтверждение пользователю
type Notifier interface {
	Notify(ctx context.Context, confirmation *domain.Confirmation) error
}

// Metrics интерфейс для сбора метрик отправки формы
type Metrics interface {
	IncSubmission(outcome string)
	IncValidationError(field, kind string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
