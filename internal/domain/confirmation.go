package domain

import "strings"

// Confirmation summary of a successfully validated booking
type Confirmation struct {
	TripType      TripType
	TripTypeLabel string
	From          string // Пусто, если выбор городов отключен
	To            string
	Departure     string // YYYY-MM-DD
	Return        string // Только для round trip
}

// HasCities returns true if origin/destination are part of the summary
func (c *Confirmation) HasCities() bool {
	return c.From != "" || c.To != ""
}

// Message renders the acknowledgment text shown to the user
func (c *Confirmation) Message() string {
	var b strings.Builder
	b.WriteString("Booking confirmed!\n\n")
	b.WriteString("Trip Type: " + c.TripTypeLabel + "\n")
	if c.HasCities() {
		b.WriteString("From: " + c.From + "\n")
		b.WriteString("To: " + c.To + "\n")
	}
	b.WriteString("Departure: " + c.Departure)
	if c.TripType.IsRoundTrip() {
		b.WriteString("\nReturn: " + c.Return)
	}
	return b.String()
}
