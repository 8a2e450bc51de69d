package validate_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers"
	"github.com/m04kA/SMC-FlightBookingForm/internal/service/forms"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTripType    = "tripType must be oneWay or roundTrip"
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

// Handle POST /api/v1/bookings/validate
// Проверка формы целиком без сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Check(r.Context(), req.ToServiceInput())
	if err != nil {
		if errors.Is(err, forms.ErrInvalidTripType) {
			h.logger.Warn("POST /bookings/validate - Invalid trip type: %q", req.TripType)
			handlers.RespondBadRequest(w, msgInvalidTripType)
			return
		}
		h.logger.Error("POST /bookings/validate - Failed to validate: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if !resp.Confirmed() {
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, handlers.FromSubmitResponse(resp))
		return
	}

	h.logger.Info("POST /bookings/validate - Booking confirmed: trip_type=%s", resp.Confirmation.TripType)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSubmitResponse(resp))
}
