package forms

// Input полное состояние формы для проверки без сессии
type Input struct {
	TripType        string
	DepartureCity   string
	DestinationCity string
	DepartureDate   string
	ReturnDate      string
}
