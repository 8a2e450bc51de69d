package get_form

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers"
	"github.com/m04kA/SMC-FlightBookingForm/internal/service/forms"
)

const msgFormNotFound = "form not found"

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

// Handle GET /api/v1/forms/{formId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	form, err := h.service.Get(r.Context(), formID)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			h.logger.Warn("GET /forms/{id} - Form not found: form_id=%s", formID)
			handlers.RespondNotFound(w, msgFormNotFound)
			return
		}
		h.logger.Error("GET /forms/{id} - Failed to get form: form_id=%s, error=%v", formID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainForm(form))
}
