package domain

import "time"

// Form represents the state of one flight booking form.
// Dates are kept as entered (YYYY-MM-DD), empty string means absent.
type Form struct {
	ID              string
	TripType        TripType
	DepartureCity   string
	DestinationCity string
	DepartureDate   string
	ReturnDate      string

	// Submitted is set on the first submission attempt; errors are shown only after it
	Submitted bool
	Errors    FieldErrors

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewForm creates a form with default values
func NewForm() *Form {
	return &Form{
		TripType: DefaultTripType,
		Errors:   FieldErrors{},
	}
}

// SetTripType меняет тип поездки.
// При переключении на one-way дата возврата и её ошибка сбрасываются безусловно.
func (f *Form) SetTripType(t TripType) error {
	if !t.IsValid() {
		return ErrInvalidTripType
	}

	f.TripType = t
	if !t.IsRoundTrip() {
		f.ReturnDate = ""
		f.clearError(FieldReturnDate)
	}
	return nil
}

// SetField sets the value of a field and optimistically clears its error.
// Full validation is not re-run; conflicts between fields surface on submit.
func (f *Form) SetField(field Field, value string) error {
	switch field {
	case FieldDepartureCity:
		f.DepartureCity = value
	case FieldDestinationCity:
		f.DestinationCity = value
	case FieldDepartureDate:
		f.DepartureDate = value
	case FieldReturnDate:
		if !f.TripType.IsRoundTrip() {
			return ErrReturnDateDisabled
		}
		f.ReturnDate = value
	default:
		return ErrUnknownField
	}

	f.clearError(field)
	return nil
}

// Value returns the current value of a field
func (f *Form) Value(field Field) string {
	switch field {
	case FieldDepartureCity:
		return f.DepartureCity
	case FieldDestinationCity:
		return f.DestinationCity
	case FieldDepartureDate:
		return f.DepartureDate
	case FieldReturnDate:
		return f.ReturnDate
	default:
		return ""
	}
}

// VisibleErrors returns errors that should be displayed to the user.
// Before the first submission attempt nothing is shown, even for an invalid form.
func (f *Form) VisibleErrors() FieldErrors {
	if !f.Submitted || f.Errors == nil {
		return FieldErrors{}
	}
	return f.Errors.Clone()
}

// Clone returns a deep copy of the form
func (f *Form) Clone() *Form {
	c := *f
	if f.Errors != nil {
		c.Errors = f.Errors.Clone()
	}
	return &c
}

func (f *Form) clearError(field Field) {
	if f.Errors != nil {
		f.Errors.Clear(field)
	}
}
