package list_cities

import (
	"net/http"

	"github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers"
)

type Handler struct {
	catalog       CityCatalog
	citySelection bool
}

func NewHandler(catalog CityCatalog, citySelection bool) *Handler {
	return &Handler{
		catalog:       catalog,
		citySelection: citySelection,
	}
}

// Handle GET /api/v1/cities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cities := h.catalog.Cities()

	resp := ListCitiesResponse{
		Cities:        make([]CityResponse, 0, len(cities)),
		CitySelection: h.citySelection,
	}
	for _, c := range cities {
		resp.Cities = append(resp.Cities, CityResponse{Value: c.Value, Label: c.Label})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
