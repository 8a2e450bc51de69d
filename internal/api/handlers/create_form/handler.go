package create_form

import (
	"net/http"

	"github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers"
)

type Handler struct {
	service FormsService
	logger  Logger
}

func NewHandler(service FormsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/forms
// Query params (все опциональны): tripType, departure, return, departureCity, destinationCity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	form, err := h.service.Create(r.Context(), r.URL.RawQuery)
	if err != nil {
		h.logger.Error("POST /forms - Failed to create form: query=%q, error=%v", r.URL.RawQuery, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /forms - Form created: form_id=%s", form.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainForm(form))
}
