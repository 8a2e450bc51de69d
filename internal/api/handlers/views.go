package handlers

import (
	"time"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
	submitForm "github.com/m04kA/SMC-FlightBookingForm/internal/usecase/submit_form"
)

// FieldErrorResponse ошибка валидации поля
type FieldErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// FormResponse HTTP модель формы.
// errors заполняется только после первой попытки отправки.
type FormResponse struct {
	ID              string                        `json:"id"`
	TripType        string                        `json:"tripType"`
	DepartureCity   string                        `json:"departureCity,omitempty"`
	DestinationCity string                        `json:"destinationCity,omitempty"`
	DepartureDate   string                        `json:"departureDate,omitempty"`
	ReturnDate      string                        `json:"returnDate,omitempty"`
	Submitted       bool                          `json:"submitted"`
	Errors          map[string]FieldErrorResponse `json:"errors,omitempty"`
	CreatedAt       string                        `json:"createdAt"`
	UpdatedAt       string                        `json:"updatedAt"`
}

// ConfirmationResponse HTTP модель подтверждения бронирования
type ConfirmationResponse struct {
	TripType  string `json:"tripType"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Departure string `json:"departure"`
	Return    string `json:"return,omitempty"`
	Message   string `json:"message"`
}

// SubmitResponse HTTP модель результата отправки
type SubmitResponse struct {
	Confirmed    bool                          `json:"confirmed"`
	Confirmation *ConfirmationResponse         `json:"confirmation,omitempty"`
	Errors       map[string]FieldErrorResponse `json:"errors,omitempty"`
}

// FromDomainForm конвертирует форму в HTTP модель
func FromDomainForm(form *domain.Form) *FormResponse {
	return &FormResponse{
		ID:              form.ID,
		TripType:        string(form.TripType),
		DepartureCity:   form.DepartureCity,
		DestinationCity: form.DestinationCity,
		DepartureDate:   form.DepartureDate,
		ReturnDate:      form.ReturnDate,
		Submitted:       form.Submitted,
		Errors:          FromFieldErrors(form.VisibleErrors()),
		CreatedAt:       form.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       form.UpdatedAt.Format(time.RFC3339),
	}
}

// FromFieldErrors конвертирует ошибки валидации; nil, если ошибок нет
func FromFieldErrors(errs domain.FieldErrors) map[string]FieldErrorResponse {
	if errs.Valid() {
		return nil
	}
	out := make(map[string]FieldErrorResponse, len(errs))
	for _, field := range domain.Fields {
		if fe, ok := errs.Get(field); ok {
			out[string(field)] = FieldErrorResponse{Kind: string(fe.Kind), Message: fe.Message}
		}
	}
	return out
}

// FromSubmitResponse конвертирует результат отправки в HTTP модель
func FromSubmitResponse(resp *submitForm.Response) *SubmitResponse {
	if !resp.Confirmed() {
		return &SubmitResponse{Errors: FromFieldErrors(resp.Errors)}
	}

	c := resp.Confirmation
	return &SubmitResponse{
		Confirmed: true,
		Confirmation: &ConfirmationResponse{
			TripType:  c.TripTypeLabel,
			From:      c.From,
			To:        c.To,
			Departure: c.Departure,
			Return:    c.Return,
			Message:   c.Message(),
		},
	}
}
