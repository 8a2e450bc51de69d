package domain

// TripType represents the kind of trip being booked
type TripType string

const (
	TripTypeOneWay    TripType = "oneWay"
	TripTypeRoundTrip TripType = "roundTrip"
)

// DefaultTripType тип поездки новой формы
const DefaultTripType = TripTypeOneWay

// ParseTripType accepts only the exact identifiers "oneWay" and "roundTrip"
func ParseTripType(s string) (TripType, bool) {
	switch TripType(s) {
	case TripTypeOneWay, TripTypeRoundTrip:
		return TripType(s), true
	default:
		return "", false
	}
}

// IsValid returns true if the trip type is one of the known values
func (t TripType) IsValid() bool {
	_, ok := ParseTripType(string(t))
	return ok
}

// IsRoundTrip returns true if a return date is meaningful for this trip type
func (t TripType) IsRoundTrip() bool {
	return t == TripTypeRoundTrip
}

// Label returns the display label of the trip type
func (t TripType) Label() string {
	if t.IsRoundTrip() {
		return LabelRoundTrip
	}
	return LabelOneWay
}
