package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForm_Defaults(t *testing.T) {
	f := NewForm()

	assert.Equal(t, TripTypeOneWay, f.TripType)
	assert.Empty(t, f.DepartureCity)
	assert.Empty(t, f.DestinationCity)
	assert.Empty(t, f.DepartureDate)
	assert.Empty(t, f.ReturnDate)
	assert.False(t, f.Submitted)
	assert.True(t, f.Errors.Valid())
}

func TestForm_SetTripType_OneWayClearsReturnDate(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetTripType(TripTypeRoundTrip))
	require.NoError(t, f.SetField(FieldReturnDate, "2030-01-15"))
	f.Errors.Set(FieldReturnDate, KindPastDate, MsgReturnDateInPast)
	f.Errors.Set(FieldDepartureDate, KindPastDate, MsgDepartureDateInPast)

	require.NoError(t, f.SetTripType(TripTypeOneWay))

	assert.Empty(t, f.ReturnDate)
	_, hasReturnErr := f.Errors.Get(FieldReturnDate)
	assert.False(t, hasReturnErr)
	_, hasDepartureErr := f.Errors.Get(FieldDepartureDate)
	assert.True(t, hasDepartureErr, "other errors are kept")
}

func TestForm_SetTripType_RoundTripKeepsReturnDate(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetTripType(TripTypeRoundTrip))
	require.NoError(t, f.SetField(FieldReturnDate, "2030-01-15"))

	require.NoError(t, f.SetTripType(TripTypeRoundTrip))

	assert.Equal(t, "2030-01-15", f.ReturnDate)
}

func TestForm_SetTripType_Invalid(t *testing.T) {
	f := NewForm()

	err := f.SetTripType("multiCity")

	assert.ErrorIs(t, err, ErrInvalidTripType)
	assert.Equal(t, TripTypeOneWay, f.TripType)
}

func TestForm_SetField_ClearsOnlyThatFieldError(t *testing.T) {
	f := NewForm()
	f.Errors.Set(FieldDepartureCity, KindRequiredFieldMissing, MsgDepartureCityRequired)
	f.Errors.Set(FieldDestinationCity, KindRequiredFieldMissing, MsgDestinationCityRequired)

	require.NoError(t, f.SetField(FieldDepartureCity, "paris"))

	assert.Equal(t, "paris", f.DepartureCity)
	_, ok := f.Errors.Get(FieldDepartureCity)
	assert.False(t, ok)
	_, ok = f.Errors.Get(FieldDestinationCity)
	assert.True(t, ok)
}

func TestForm_SetField_SameCityIsNotCorrected(t *testing.T) {
	f := NewForm()
	require.NoError(t, f.SetField(FieldDepartureCity, "paris"))
	require.NoError(t, f.SetField(FieldDestinationCity, "paris"))

	assert.Equal(t, "paris", f.DepartureCity)
	assert.Equal(t, "paris", f.DestinationCity)
	assert.True(t, f.Errors.Valid())
}

func TestForm_SetField_ReturnDateDisabledForOneWay(t *testing.T) {
	f := NewForm()

	err := f.SetField(FieldReturnDate, "2030-01-15")

	assert.ErrorIs(t, err, ErrReturnDateDisabled)
	assert.Empty(t, f.ReturnDate)
}

func TestForm_SetField_UnknownField(t *testing.T) {
	f := NewForm()

	err := f.SetField(Field("passengers"), "2")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestForm_OneWayNeverHoldsReturnDate(t *testing.T) {
	f := NewForm()
	mutations := []func(){
		func() { _ = f.SetTripType(TripTypeRoundTrip) },
		func() { _ = f.SetField(FieldReturnDate, "2030-02-01") },
		func() { _ = f.SetField(FieldDepartureDate, "2030-01-01") },
		func() { _ = f.SetTripType(TripTypeOneWay) },
		func() { _ = f.SetField(FieldReturnDate, "2030-02-02") },
		func() { _ = f.SetField(FieldDepartureCity, "rome") },
		func() { _ = f.SetTripType(TripTypeOneWay) },
	}

	for i, m := range mutations {
		m()
		if f.TripType == TripTypeOneWay {
			assert.Empty(t, f.ReturnDate, "mutation #%d", i)
		}
	}
}

func TestForm_VisibleErrors(t *testing.T) {
	f := NewForm()
	f.Errors.Set(FieldDepartureDate, KindRequiredFieldMissing, MsgDepartureDateRequired)

	assert.Empty(t, f.VisibleErrors(), "errors are hidden before submission")

	f.Submitted = true
	visible := f.VisibleErrors()
	require.Len(t, visible, 1)
	assert.Equal(t, MsgDepartureDateRequired, visible[FieldDepartureDate].Message)
}

func TestForm_Clone(t *testing.T) {
	f := NewForm()
	f.Errors.Set(FieldDepartureDate, KindRequiredFieldMissing, MsgDepartureDateRequired)

	c := f.Clone()
	c.Errors.Clear(FieldDepartureDate)
	c.DepartureCity = "rome"

	_, ok := f.Errors.Get(FieldDepartureDate)
	assert.True(t, ok)
	assert.Empty(t, f.DepartureCity)
}
