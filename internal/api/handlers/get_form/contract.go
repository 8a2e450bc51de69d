package get_form

import (
	"context"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
)

type FormsService interface {
	Get(ctx context.Context, id string) (*domain.Form, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
