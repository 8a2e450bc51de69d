package update_trip_type

import (
	"context"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
)

type FormsService interface {
	SetTripType(ctx context.Context, id string, tripType string) (*domain.Form, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
