package domain

// Field идентификатор поля формы, к которому может относиться ошибка
type Field string

const (
	FieldDepartureCity   Field = "departureCity"
	FieldDestinationCity Field = "destinationCity"
	FieldDepartureDate   Field = "departureDate"
	FieldReturnDate      Field = "returnDate"
)

// Fields lists form fields in validation order
var Fields = []Field{
	FieldDepartureCity,
	FieldDestinationCity,
	FieldDepartureDate,
	FieldReturnDate,
}

// ParseField returns the field with the given name
func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// IsCity returns true for the origin/destination fields
func (f Field) IsCity() bool {
	return f == FieldDepartureCity || f == FieldDestinationCity
}

// ErrorKind классификация ошибки валидации
type ErrorKind string

const (
	KindRequiredFieldMissing ErrorKind = "required"
	KindInvalidFormat        ErrorKind = "invalid_format"
	KindPastDate             ErrorKind = "past_date"
	KindOrderViolation       ErrorKind = "order_violation"
	KindDuplicateEndpoint    ErrorKind = "duplicate_endpoint"
)

// FieldError validation failure attached to one form field
type FieldError struct {
	Kind    ErrorKind
	Message string
}

// FieldErrors ошибки валидации по полям.
// Поле отсутствует в map (или сообщение пустое) - поле валидно.
type FieldErrors map[Field]FieldError

// Set records an error for the field
func (e FieldErrors) Set(field Field, kind ErrorKind, message string) {
	e[field] = FieldError{Kind: kind, Message: message}
}

// Get returns the error for the field, ok = false if the field is valid
func (e FieldErrors) Get(field Field) (FieldError, bool) {
	fe, ok := e[field]
	if !ok || fe.Message == "" {
		return FieldError{}, false
	}
	return fe, true
}

// Clear removes the error of the field
func (e FieldErrors) Clear(field Field) {
	delete(e, field)
}

// Valid returns true if no field has a non-empty message
func (e FieldErrors) Valid() bool {
	for _, fe := range e {
		if fe.Message != "" {
			return false
		}
	}
	return true
}

// Clone returns an independent copy
func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
