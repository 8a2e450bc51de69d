package submit_form

import "github.com/m04kA/SMC-FlightBookingForm/internal/domain"

// Outcome values reported to metrics
const (
	OutcomeConfirmed = "confirmed"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// Response результат попытки отправки формы.
// Ровно одно из полей заполнено: Confirmation при успехе, Errors при ошибках валидации.
type Response struct {
	Confirmation *domain.Confirmation
	Errors       domain.FieldErrors
}

// Confirmed returns true if the submission fully succeeded
func (r *Response) Confirmed() bool {
	return r.Confirmation != nil
}
