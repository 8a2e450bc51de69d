package forms

import "errors"

var (
	// ErrFormNotFound возвращается, когда форма не найдена
	ErrFormNotFound = errors.New("forms: form not found")

	// ErrInvalidTripType возвращается для неизвестного типа поездки
	ErrInvalidTripType = errors.New("forms: invalid trip type")

	// ErrUnknownField возвращается для неизвестного поля формы
	ErrUnknownField = errors.New("forms: unknown field")

	// ErrUnknownCity возвращается, когда город отсутствует в каталоге
	ErrUnknownCity = errors.New("forms: unknown city")

	// ErrCitySelectionDisabled возвращается при изменении городов, когда выбор городов выключен
	ErrCitySelectionDisabled = errors.New("forms: city selection is disabled")

	// ErrReturnDateDisabled возвращается при установке даты возврата для поездки в одну сторону
	ErrReturnDateDisabled = errors.New("forms: return date is disabled for one-way trips")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("forms: internal error")
)
