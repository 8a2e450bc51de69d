package create_form

import (
	"context"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
)

type FormsService interface {
	Create(ctx context.Context, rawQuery string) (*domain.Form, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
