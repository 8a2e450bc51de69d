package update_trip_type

// UpdateTripTypeRequest HTTP request model
type UpdateTripTypeRequest struct {
	TripType string `json:"tripType"` // "oneWay" | "roundTrip"
}
