package update_trip_type

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers"
	"github.com/m04kA/SMC-FlightBookingForm/internal/service/forms"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTripType    = "tripType must be oneWay or roundTrip"
	msgFormNotFound       = "form not found"
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

// Handle PUT /api/v1/forms/{formId}/trip-type
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	var req UpdateTripTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /forms/{id}/trip-type - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	form, err := h.service.SetTripType(r.Context(), formID, req.TripType)
	if err != nil {
		switch {
		case errors.Is(err, forms.ErrFormNotFound):
			h.logger.Warn("PUT /forms/{id}/trip-type - Form not found: form_id=%s", formID)
			handlers.RespondNotFound(w, msgFormNotFound)

		case errors.Is(err, forms.ErrInvalidTripType):
			h.logger.Warn("PUT /forms/{id}/trip-type - Invalid trip type: form_id=%s, trip_type=%q", formID, req.TripType)
			handlers.RespondBadRequest(w, msgInvalidTripType)

		default:
			h.logger.Error("PUT /forms/{id}/trip-type - Failed to update: form_id=%s, error=%v", formID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /forms/{id}/trip-type - Trip type updated: form_id=%s, trip_type=%s", formID, form.TripType)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainForm(form))
}
