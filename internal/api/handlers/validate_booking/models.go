package validate_booking

import "github.com/m04kA/SMC-FlightBookingForm/internal/service/forms"

// ValidateBookingRequest HTTP request model
type ValidateBookingRequest struct {
	TripType        string `json:"tripType"`                  // По умолчанию oneWay
	DepartureCity   string `json:"departureCity,omitempty"`   // Только при выборе городов
	DestinationCity string `json:"destinationCity,omitempty"` // Только при выборе городов
	DepartureDate   string `json:"departureDate"`             // YYYY-MM-DD
	ReturnDate      string `json:"returnDate,omitempty"`      // YYYY-MM-DD, только для roundTrip
}

// ToServiceInput конвертирует HTTP модель во входные данные сервиса
func (r *ValidateBookingRequest) ToServiceInput() *forms.Input {
	return &forms.Input{
		TripType:        r.TripType,
		DepartureCity:   r.DepartureCity,
		DestinationCity: r.DestinationCity,
		DepartureDate:   r.DepartureDate,
		ReturnDate:      r.ReturnDate,
	}
}
