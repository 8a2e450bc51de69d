package domain

import "errors"

var (
	// ErrInvalidTripType возвращается для неизвестного типа поездки
	ErrInvalidTripType = errors.New("domain: invalid trip type")

	// ErrUnknownField возвращается при изменении несуществующего поля
	ErrUnknownField = errors.New("domain: unknown form field")

	// ErrReturnDateDisabled возвращается при попытке задать дату возврата для поездки в одну сторону
	ErrReturnDateDisabled = errors.New("domain: return date is disabled for one-way trips")
)
