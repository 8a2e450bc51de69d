package update_field

// UpdateFieldRequest HTTP request model
type UpdateFieldRequest struct {
	Value *string `json:"value"` // Обязательное; пустая строка очищает поле
}
