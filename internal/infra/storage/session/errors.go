package session

import "errors"

var (
	// ErrFormNotFound возвращается, когда форма не найдена (или истек срок хранения)
	ErrFormNotFound = errors.New("session.repository: form not found")

	// ErrFormExists возвращается при повторном создании формы с тем же ID
	ErrFormExists = errors.New("session.repository: form already exists")

	// ErrEncode возвращается при ошибке сериализации формы
	ErrEncode = errors.New("session.repository: failed to encode form")

	// ErrStorage возвращается при ошибках хранилища
	ErrStorage = errors.New("session.repository: storage error")
)
