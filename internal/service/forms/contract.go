package forms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
	initForm "github.com/m04kA/SMC-FlightBookingForm/internal/usecase/init_form"
	submitForm "github.com/m04kA/SMC-FlightBookingForm/internal/usecase/submit_form"
)

// FormRepository интерфейс хранилища форм
type FormRepository interface {
	Create(ctx context.Context, form *domain.Form) error
	Get(ctx context.Context, id string) (*domain.Form, error)
	Update(ctx context.Context, form *domain.Form) error
}

// CityCatalog интерфейс каталога городов
type CityCatalog interface {
	Contains(value string) bool
}

// InitFormUseCase интерфейс use case инициализации формы
type InitFormUseCase interface {
	Execute(ctx context.Context, req *initForm.Request) (*initForm.Response, error)
}

// SubmitFormUseCase интерфейс use case отправки формы
type SubmitFormUseCase interface {
	Execute(ctx context.Context, form *domain.Form) (*submitForm.Response, error)
}

// Metrics интерфейс для сбора метрик
type Metrics interface {
	IncFormCreated()
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
