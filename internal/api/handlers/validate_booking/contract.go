package validate_booking

import (
	"context"

	"github.com/m04kA/SMC-FlightBookingForm/internal/service/forms"
	submitForm "github.com/m04kA/SMC-FlightBookingForm/internal/usecase/submit_form"
)

type FormsService interface {
	Check(ctx context.Context, in *forms.Input) (*submitForm.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
