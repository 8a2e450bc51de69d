package submit_form

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_form: invalid input data")

	// ErrNotificationFailed возвращается, когда подтверждение не удалось доставить
	ErrNotificationFailed = errors.New("submit_form: failed to deliver confirmation")
)
