package update_field

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers"
	"github.com/m04kA/SMC-FlightBookingForm/internal/service/forms"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgMissingValue          = "value is required"
	msgFormNotFound          = "form not found"
	msgUnknownField          = "unknown field"
	msgUnknownCity           = "city is not in the catalog"
	msgCitySelectionDisabled = "city selection is disabled"
	msgReturnDateDisabled    = "return date is only available for round trips"
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

// Handle PUT /api/v1/forms/{formId}/fields/{field}
// field: departureCity, destinationCity, departureDate, returnDate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	formID := vars["formId"]
	field := vars["field"]

	var req UpdateFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /forms/{id}/fields/{field} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Value == nil {
		h.logger.Warn("PUT /forms/{id}/fields/{field} - Missing value: form_id=%s, field=%s", formID, field)
		handlers.RespondBadRequest(w, msgMissingValue)
		return
	}

	form, err := h.service.SetField(r.Context(), formID, field, *req.Value)
	if err != nil {
		switch {
		case errors.Is(err, forms.ErrFormNotFound):
			h.logger.Warn("PUT /forms/{id}/fields/{field} - Form not found: form_id=%s", formID)
			handlers.RespondNotFound(w, msgFormNotFound)

		case errors.Is(err, forms.ErrUnknownField):
			handlers.RespondNotFound(w, msgUnknownField)

		case errors.Is(err, forms.ErrUnknownCity):
			handlers.RespondBadRequest(w, msgUnknownCity)

		case errors.Is(err, forms.ErrCitySelectionDisabled):
			handlers.RespondBadRequest(w, msgCitySelectionDisabled)

		case errors.Is(err, forms.ErrReturnDateDisabled):
			handlers.RespondBadRequest(w, msgReturnDateDisabled)

		default:
			h.logger.Error("PUT /forms/{id}/fields/{field} - Failed to update: form_id=%s, field=%s, error=%v",
				formID, field, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /forms/{id}/fields/{field} - Field updated: form_id=%s, field=%s", formID, field)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainForm(form))
}
