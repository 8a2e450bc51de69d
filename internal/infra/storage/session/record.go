package session

import (
	"time"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
)

// formRecord представление формы для хранения во внешнем хранилище
type formRecord struct {
	ID              string                 `json:"id"`
	TripType        string                 `json:"tripType"`
	DepartureCity   string                 `json:"departureCity,omitempty"`
	DestinationCity string                 `json:"destinationCity,omitempty"`
	DepartureDate   string                 `json:"departureDate,omitempty"`
	ReturnDate      string                 `json:"returnDate,omitempty"`
	Submitted       bool                   `json:"submitted"`
	Errors          map[string]errorRecord `json:"errors,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

type errorRecord struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func toRecord(form *domain.Form) formRecord {
	rec := formRecord{
		ID:              form.ID,
		TripType:        string(form.TripType),
		DepartureCity:   form.DepartureCity,
		DestinationCity: form.DestinationCity,
		DepartureDate:   form.DepartureDate,
		ReturnDate:      form.ReturnDate,
		Submitted:       form.Submitted,
		CreatedAt:       form.CreatedAt,
		UpdatedAt:       form.UpdatedAt,
	}

	if len(form.Errors) > 0 {
		rec.Errors = make(map[string]errorRecord, len(form.Errors))
		for field, fe := range form.Errors {
			rec.Errors[string(field)] = errorRecord{Kind: string(fe.Kind), Message: fe.Message}
		}
	}

	return rec
}

func (rec formRecord) toDomain() *domain.Form {
	form := &domain.Form{
		ID:              rec.ID,
		TripType:        domain.TripType(rec.TripType),
		DepartureCity:   rec.DepartureCity,
		DestinationCity: rec.DestinationCity,
		DepartureDate:   rec.DepartureDate,
		ReturnDate:      rec.ReturnDate,
		Submitted:       rec.Submitted,
		Errors:          make(domain.FieldErrors, len(rec.Errors)),
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}

	for field, fe := range rec.Errors {
		form.Errors[domain.Field(field)] = domain.FieldError{
			Kind:    domain.ErrorKind(fe.Kind),
			Message: fe.Message,
		}
	}

	return form
}
