package submit_form

import (
	"context"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
	submitForm "github.com/m04kA/SMC-FlightBookingForm/internal/usecase/submit_form"
)

type FormsService interface {
	Submit(ctx context.Context, id string) (*domain.Form, *submitForm.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
