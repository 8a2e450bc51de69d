package validation

import (
	"time"

	"github.com/m04kA/SMC-FlightBookingForm/internal/domain"
)

// Validator проверяет состояние формы бронирования.
// Чистая функция от (form, today): никаких обращений к часам или окружению.
type Validator struct {
	citySelection bool
}

// NewValidator создает валидатор; citySelection включает правила для городов
func NewValidator(citySelection bool) *Validator {
	return &Validator{citySelection: citySelection}
}

// CitySelection returns true if origin/destination rules are enabled
func (v *Validator) CitySelection() bool {
	return v.citySelection
}

// Validate evaluates every rule independently, in field order.
// A field missing from the result is valid.
func (v *Validator) Validate(form *domain.Form, today time.Time) domain.FieldErrors {
	errs := domain.FieldErrors{}
	today = domain.DateOnly(today)

	if v.citySelection {
		validateDepartureCity(form, errs)
		validateDestinationCity(form, errs)
	}

	validateDepartureDate(form, today, errs)

	if form.TripType.IsRoundTrip() {
		validateReturnDate(form, today, errs)
	}

	return errs
}

func validateDepartureCity(form *domain.Form, errs domain.FieldErrors) {
	if form.DepartureCity == "" {
		errs.Set(domain.FieldDepartureCity, domain.KindRequiredFieldMissing, domain.MsgDepartureCityRequired)
	}
}

func validateDestinationCity(form *domain.Form, errs domain.FieldErrors) {
	switch {
	case form.DestinationCity == "":
		errs.Set(domain.FieldDestinationCity, domain.KindRequiredFieldMissing, domain.MsgDestinationCityRequired)
	case form.DestinationCity == form.DepartureCity:
		errs.Set(domain.FieldDestinationCity, domain.KindDuplicateEndpoint, domain.MsgDestinationSameAsOrigin)
	}
}

func validateDepartureDate(form *domain.Form, today time.Time, errs domain.FieldErrors) {
	switch {
	case form.DepartureDate == "":
		errs.Set(domain.FieldDepartureDate, domain.KindRequiredFieldMissing, domain.MsgDepartureDateRequired)
	case !domain.IsValidDateFormat(form.DepartureDate):
		errs.Set(domain.FieldDepartureDate, domain.KindInvalidFormat, domain.MsgInvalidDateFormat)
	case isDateInPast(form.DepartureDate, today):
		errs.Set(domain.FieldDepartureDate, domain.KindPastDate, domain.MsgDepartureDateInPast)
	}
}

// validateReturnDate проверки взаимоисключающие: срабатывает только первая
func validateReturnDate(form *domain.Form, today time.Time, errs domain.FieldErrors) {
	switch {
	case form.ReturnDate == "":
		errs.Set(domain.FieldReturnDate, domain.KindRequiredFieldMissing, domain.MsgReturnDateRequired)
	case !domain.IsValidDateFormat(form.ReturnDate):
		errs.Set(domain.FieldReturnDate, domain.KindInvalidFormat, domain.MsgInvalidDateFormat)
	case isDateInPast(form.ReturnDate, today):
		errs.Set(domain.FieldReturnDate, domain.KindPastDate, domain.MsgReturnDateInPast)
	case isDateBefore(form.ReturnDate, form.DepartureDate):
		errs.Set(domain.FieldReturnDate, domain.KindOrderViolation, domain.MsgReturnBeforeDeparture)
	}
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня.
// Несуществующая календарная дата (например, 2024-13-99) в прошлом не считается.
func isDateInPast(date string, today time.Time) bool {
	d, ok := domain.ParseDate(date)
	if !ok {
		return false
	}
	return d.Before(today)
}

// isDateBefore returns true only when both dates are real and a < b
func isDateBefore(a, b string) bool {
	da, ok := domain.ParseDate(a)
	if !ok {
		return false
	}
	db, ok := domain.ParseDate(b)
	if !ok {
		return false
	}
	return da.Before(db)
}
