package init_form

import "github.com/m04kA/SMC-FlightBookingForm/internal/domain"

// Request запрос на инициализацию формы
type Request struct {
	RawQuery string // Query string страницы без "?" (например, "tripType=roundTrip&departure=2030-01-10")
}

// Response инициализированная форма
type Response struct {
	Form    *domain.Form
	Ignored []string // Распознанные параметры, значения которых были отброшены
}
