package update_trip_type

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers"
	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
	"github.com/m04kA/SMC-FlightBookingForm/internal/service/forms"
	"github.com/m04kA/SMC-FlightBookingForm/pkg/logger"
)

type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) SetTripType(ctx context.Context, id string, tripType string) (*domain.Form, error) {
	args := m.Called(ctx, id, tripType)
	form, _ := args.Get(0).(*domain.Form)
	return form, args.Error(1)
}

func doUpdate(svc *serviceMock, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/forms/f1/trip-type", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"formId": "f1"})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_SwitchToOneWay(t *testing.T) {
	form := domain.NewForm()
	form.ID = "f1"
	form.DepartureDate = "2030-01-10"

	svc := new(serviceMock)
	svc.On("SetTripType", mock.Anything, "f1", "oneWay").Return(form, nil)

	rec := doUpdate(svc, `{"tripType":"oneWay"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body handlers.FormResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "oneWay", body.TripType)
	assert.Empty(t, body.ReturnDate)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"invalid trip type", `{"tripType":"multiCity"}`, forms.ErrInvalidTripType, http.StatusBadRequest},
		{"form not found", `{"tripType":"roundTrip"}`, forms.ErrFormNotFound, http.StatusNotFound},
		{"internal", `{"tripType":"roundTrip"}`, forms.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(serviceMock)
			svc.On("SetTripType", mock.Anything, "f1", mock.Anything).Return(nil, tt.err)

			rec := doUpdate(svc, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	svc := new(serviceMock)
	rec := doUpdate(svc, `{"tripType":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "SetTripType", mock.Anything, mock.Anything, mock.Anything)
}
