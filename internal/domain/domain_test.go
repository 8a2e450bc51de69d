package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTripType(t *testing.T) {
	tests := []struct {
		in   string
		want TripType
		ok   bool
	}{
		{"oneWay", TripTypeOneWay, true},
		{"roundTrip", TripTypeRoundTrip, true},
		{"RoundTrip", "", false},
		{"round_trip", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTripType(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidDateFormat(t *testing.T) {
	assert.True(t, IsValidDateFormat("2030-01-10"))
	assert.True(t, IsValidDateFormat("2024-13-99"), "pattern check only")
	assert.False(t, IsValidDateFormat("not-a-date"))
	assert.False(t, IsValidDateFormat("2030-1-10"))
	assert.False(t, IsValidDateFormat("2030-01-10T00:00:00Z"))
	assert.False(t, IsValidDateFormat(" 2030-01-10"))
	assert.False(t, IsValidDateFormat(""))
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2030-01-10")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseDate("2024-13-99")
	assert.False(t, ok)

	_, ok = ParseDate("garbage")
	assert.False(t, ok)
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2026, 10, 19, 23, 59, 0, 0, loc)

	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), DateOnly(now))
}

func TestCityCatalog(t *testing.T) {
	c := DefaultCityCatalog()

	assert.Equal(t, 10, c.Len())
	assert.True(t, c.Contains("paris"))
	assert.False(t, c.Contains("Paris"))
	assert.Equal(t, "London", c.Label("london"))
	assert.Equal(t, "atlantis", c.Label("atlantis"), "unmapped identifier falls back to itself")
	assert.Equal(t, "amsterdam", c.Cities()[0].Value)
}

func TestCityCatalog_DuplicatesKeepFirst(t *testing.T) {
	c := NewCityCatalog([]City{
		{Value: "rome", Label: "Rome"},
		{Value: "rome", Label: "Roma"},
		{Value: "oslo", Label: "Oslo"},
	})

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "Rome", c.Label("rome"))
}

func TestFieldErrors_Valid(t *testing.T) {
	errs := FieldErrors{}
	assert.True(t, errs.Valid())

	errs[FieldDepartureCity] = FieldError{}
	assert.True(t, errs.Valid(), "empty message means valid")

	errs.Set(FieldReturnDate, KindOrderViolation, MsgReturnBeforeDeparture)
	assert.False(t, errs.Valid())
}

func TestConfirmation_Message(t *testing.T) {
	t.Run("round trip with cities", func(t *testing.T) {
		c := &Confirmation{
			TripType:      TripTypeRoundTrip,
			TripTypeLabel: LabelRoundTrip,
			From:          "London",
			To:            "Rome",
			Departure:     "2030-01-10",
			Return:        "2030-01-15",
		}

		assert.Equal(t, "Booking confirmed!\n\nTrip Type: Round Trip\nFrom: London\nTo: Rome\nDeparture: 2030-01-10\nReturn: 2030-01-15", c.Message())
	})

	t.Run("one way without cities", func(t *testing.T) {
		c := &Confirmation{
			TripType:      TripTypeOneWay,
			TripTypeLabel: LabelOneWay,
			Departure:     "2030-01-10",
		}

		assert.Equal(t, "Booking confirmed!\n\nTrip Type: One-way\nDeparture: 2030-01-10", c.Message())
	})
}
