package list_cities

import "github.com/m04kA/SMC-FlightBookingForm/internal/domain"

type CityCatalog interface {
	Cities() []domain.City
}
