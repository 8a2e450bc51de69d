package submit_form

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

// Handle POST /api/v1/forms/{formId}/submit
// 200 - подтверждение, 422 - ошибки валидации полей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	_, resp, err := h.service.Submit(r.Context(), formID)
	if err != nil {
		if errors.Is(err, forms.ErrFormNotFound) {
			h.logger.Warn("POST /forms/{id}/submit - Form not found: form_id=%s", formID)
			handlers.RespondNotFound(w, msgFormNotFound)
			return
		}
		h.logger.Error("POST /forms/{id}/submit - Failed to submit: form_id=%s, error=%v", formID, err)
		handlers.RespondInternalError(w)
		return
	}

	if !resp.Confirmed() {
		h.logger.Info("POST /forms/{id}/submit - Validation failed: form_id=%s, errors=%d", formID, len(resp.Errors))
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, handlers.FromSubmitResponse(resp))
		return
	}

	h.logger.Info("POST /forms/{id}/submit - Booking confirmed: form_id=%s", formID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSubmitResponse(resp))
}
