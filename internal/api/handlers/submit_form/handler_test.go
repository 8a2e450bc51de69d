package submit_form

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlightBookingForm/internal/api/handlers"
	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
	"github.com/m04kA/SMC-FlightBookingForm/internal/service/forms"
	submitForm "github.com/m04kA/SMC-FlightBookingForm/internal/usecase/submit_form"
	"github.com/m04kA/SMC-FlightBookingForm/pkg/logger"
)

type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) Submit(ctx context.Context, id string) (*domain.Form, *submitForm.Response, error) {
	args := m.Called(ctx, id)
	form, _ := args.Get(0).(*domain.Form)
	resp, _ := args.Get(1).(*submitForm.Response)
	return form, resp, args.Error(2)
}

func doSubmit(t *testing.T, svc *serviceMock, formID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/"+formID+"/submit", nil)
	req = mux.SetURLVars(req, map[string]string{"formId": formID})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Confirmed(t *testing.T) {
	svc := new(serviceMock)
	resp := &submitForm.Response{Confirmation: &domain.Confirmation{
		TripType:      domain.TripTypeOneWay,
		TripTypeLabel: domain.LabelOneWay,
		From:          "Paris",
		To:            "Rome",
		Departure:     "2026-10-21",
	}}
	svc.On("Submit", mock.Anything, "f1").Return(domain.NewForm(), resp, nil)

	rec := doSubmit(t, svc, "f1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body handlers.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Confirmed)
	require.NotNil(t, body.Confirmation)
	assert.Equal(t, "One-way", body.Confirmation.TripType)
	assert.Equal(t, "Paris", body.Confirmation.From)
	assert.Empty(t, body.Confirmation.Return)
	assert.NotContains(t, body.Confirmation.Message, "Return:")
	svc.AssertExpectations(t)
}

func TestHandle_ValidationErrors(t *testing.T) {
	svc := new(serviceMock)
	errs := domain.FieldErrors{}
	errs.Set(domain.FieldDepartureDate, domain.KindRequiredFieldMissing, domain.MsgDepartureDateRequired)
	svc.On("Submit", mock.Anything, "f1").Return(domain.NewForm(), &submitForm.Response{Errors: errs}, nil)

	rec := doSubmit(t, svc, "f1")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body handlers.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Confirmed)
	assert.Nil(t, body.Confirmation)
	require.Contains(t, body.Errors, "departureDate")
	assert.Equal(t, "required", body.Errors["departureDate"].Kind)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", forms.ErrFormNotFound, http.StatusNotFound},
		{"internal", fmt.Errorf("%w: boom", forms.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(serviceMock)
			svc.On("Submit", mock.Anything, "f1").Return(nil, nil, tt.err)

			rec := doSubmit(t, svc, "f1")
			assert.Equal(t, tt.status, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
		})
	}
}
