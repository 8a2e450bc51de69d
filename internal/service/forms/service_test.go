package forms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
	"github.com/m04kA/SMC-FlightBookingForm/internal/infra/storage/session"
	"github.com/m04kA/SMC-FlightBookingForm/internal/integrations/notifier/notifiertest"
	"github.com/m04kA/SMC-FlightBookingForm/internal/service/validation"
	initForm "github.com/m04kA/SMC-FlightBookingForm/internal/usecase/init_form"
	submitForm "github.com/m04kA/SMC-FlightBookingForm/internal/usecase/submit_form"
	"github.com/m04kA/SMC-FlightBookingForm/pkg/logger"
	"github.com/m04kA/SMC-FlightBookingForm/pkg/metrics"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func day(offset int) string {
	return domain.FormatDate(domain.DateOnly(now).AddDate(0, 0, offset))
}

func newService(t *testing.T, citySelection bool) (*Service, *notifiertest.Recorder) {
	t.Helper()
	log := logger.NewNop()
	catalog := domain.DefaultCityCatalog()
	rec := notifiertest.NewRecorder()
	clock := fixedTime{now: now}

	initUC := initForm.NewUseCase(catalog, citySelection, log)
	submitUC := submitForm.NewUseCase(
		validation.NewValidator(citySelection),
		catalog,
		rec,
		metrics.Nop{},
		log,
	).WithTimeProvider(clock)

	svc := NewService(session.NewMemoryRepository(time.Hour), catalog, citySelection, initUC, submitUC, metrics.Nop{}, log).
		WithTimeProvider(clock)
	return svc, rec
}

func TestService_CreateFromQuery(t *testing.T) {
	svc, _ := newService(t, true)
	ctx := context.Background()

	form, err := svc.Create(ctx, "tripType=roundTrip&departure=2030-01-10&return=2030-01-15&departureCity=paris")
	require.NoError(t, err)

	assert.NotEmpty(t, form.ID)
	assert.Equal(t, now, form.CreatedAt)

	got, err := svc.Get(ctx, form.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TripTypeRoundTrip, got.TripType)
	assert.Equal(t, "2030-01-10", got.DepartureDate)
	assert.Equal(t, "2030-01-15", got.ReturnDate)
	assert.Equal(t, "paris", got.DepartureCity)
}

func TestService_GetNotFound(t *testing.T) {
	svc, _ := newService(t, true)

	_, err := svc.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestService_SetTripTypeOneWayClearsReturn(t *testing.T) {
	svc, _ := newService(t, true)
	ctx := context.Background()
	form, err := svc.Create(ctx, "tripType=roundTrip&return=2030-01-15")
	require.NoError(t, err)

	updated, err := svc.SetTripType(ctx, form.ID, "oneWay")
	require.NoError(t, err)
	assert.Empty(t, updated.ReturnDate)

	stored, err := svc.Get(ctx, form.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.ReturnDate)
	assert.Equal(t, domain.TripTypeOneWay, stored.TripType)
}

func TestService_SetTripTypeInvalid(t *testing.T) {
	svc, _ := newService(t, true)
	ctx := context.Background()
	form, err := svc.Create(ctx, "")
	require.NoError(t, err)

	_, err = svc.SetTripType(ctx, form.ID, "both")

	assert.ErrorIs(t, err, ErrInvalidTripType)
}

func TestService_SetField(t *testing.T) {
	svc, _ := newService(t, true)
	ctx := context.Background()
	form, err := svc.Create(ctx, "")
	require.NoError(t, err)

	_, err = svc.SetField(ctx, form.ID, "departureCity", "london")
	require.NoError(t, err)

	_, err = svc.SetField(ctx, form.ID, "destinationCity", "atlantis")
	assert.ErrorIs(t, err, ErrUnknownCity)

	_, err = svc.SetField(ctx, form.ID, "returnDate", "2030-01-15")
	assert.ErrorIs(t, err, ErrReturnDateDisabled)

	_, err = svc.SetField(ctx, form.ID, "seat", "12A")
	assert.ErrorIs(t, err, ErrUnknownField)

	stored, err := svc.Get(ctx, form.ID)
	require.NoError(t, err)
	assert.Equal(t, "london", stored.DepartureCity)
	assert.Empty(t, stored.DestinationCity)
	assert.Empty(t, stored.ReturnDate)
}

func TestService_SetCityWhenSelectionDisabled(t *testing.T) {
	svc, _ := newService(t, false)
	ctx := context.Background()
	form, err := svc.Create(ctx, "")
	require.NoError(t, err)

	_, err = svc.SetField(ctx, form.ID, "departureCity", "london")

	assert.ErrorIs(t, err, ErrCitySelectionDisabled)
}

func TestService_SubmitPersistsErrorsAndClearsOnEdit(t *testing.T) {
	svc, rec := newService(t, true)
	ctx := context.Background()
	form, err := svc.Create(ctx, "departureCity=london&destinationCity=london&departure="+day(1))
	require.NoError(t, err)

	submitted, resp, err := svc.Submit(ctx, form.ID)
	require.NoError(t, err)
	assert.False(t, resp.Confirmed())
	assert.True(t, submitted.Submitted)
	assert.Empty(t, rec.Confirmations())

	stored, err := svc.Get(ctx, form.ID)
	require.NoError(t, err)
	require.Len(t, stored.VisibleErrors(), 1)
	assert.Equal(t, domain.KindDuplicateEndpoint, stored.VisibleErrors()[domain.FieldDestinationCity].Kind)

	edited, err := svc.SetField(ctx, form.ID, "destinationCity", "rome")
	require.NoError(t, err)
	assert.Empty(t, edited.VisibleErrors())

	_, resp, err = svc.Submit(ctx, form.ID)
	require.NoError(t, err)
	require.True(t, resp.Confirmed())
	require.Len(t, rec.Confirmations(), 1)
	assert.Equal(t, "Rome", rec.Confirmations()[0].To)
}

func TestService_SubmitKeepsStateWhenDeliveryFails(t *testing.T) {
	svc, rec := newService(t, true)
	ctx := context.Background()
	form, err := svc.Create(ctx, "departureCity=paris&destinationCity=rome&departure="+day(1))
	require.NoError(t, err)

	rec.Fail(errors.New("boom"))
	_, _, err = svc.Submit(ctx, form.ID)
	require.ErrorIs(t, err, submitForm.ErrNotificationFailed)

	stored, err := svc.Get(ctx, form.ID)
	require.NoError(t, err)
	assert.True(t, stored.Submitted)
	assert.Empty(t, stored.VisibleErrors())

	rec.Fail(nil)
	_, resp, err := svc.Submit(ctx, form.ID)
	require.NoError(t, err)
	assert.True(t, resp.Confirmed())
	assert.Len(t, rec.Confirmations(), 1)
}

func TestService_Check(t *testing.T) {
	svc, _ := newService(t, false)

	resp, err := svc.Check(context.Background(), &Input{
		TripType:      "roundTrip",
		DepartureDate: "2030-01-10",
		ReturnDate:    "2030/01/15",
	})

	require.NoError(t, err)
	assert.False(t, resp.Confirmed())
	assert.Equal(t, domain.KindInvalidFormat, resp.Errors[domain.FieldReturnDate].Kind)
}

func TestService_CheckOneWayDropsReturnDate(t *testing.T) {
	svc, _ := newService(t, false)

	resp, err := svc.Check(context.Background(), &Input{
		DepartureDate: day(2),
		ReturnDate:    "junk",
	})

	require.NoError(t, err)
	require.True(t, resp.Confirmed())
	assert.Empty(t, resp.Confirmation.Return)
}

func TestService_CheckInvalidTripType(t *testing.T) {
	svc, _ := newService(t, false)

	_, err := svc.Check(context.Background(), &Input{TripType: "return"})

	assert.ErrorIs(t, err, ErrInvalidTripType)
}
