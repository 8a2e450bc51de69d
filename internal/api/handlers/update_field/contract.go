package update_field

import (
	"context"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
)

type FormsService interface {
	SetField(ctx context.Context, id string, fieldName string, value string) (*domain.Form, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
