package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Query parameter names, которые читаются при инициализации формы
const (
	ParamTripType        = "tripType"
	ParamDeparture       = "departure"
	ParamReturn          = "return"
	ParamDepartureCity   = "departureCity"
	ParamDestinationCity = "destinationCity"
)

// Display labels for trip types
const (
	LabelOneWay    = "One-way"
	LabelRoundTrip = "Round Trip"
)

// Human-readable validation messages
const (
	MsgDepartureCityRequired   = "Departure city is required"
	MsgDestinationCityRequired = "Destination city is required"
	MsgDestinationSameAsOrigin = "Destination must be different from departure"
	MsgDepartureDateRequired   = "Departure date is required"
	MsgDepartureDateInPast     = "Departure date cannot be in the past"
	MsgReturnDateRequired      = "Return date is required"
	MsgReturnDateInPast        = "Return date cannot be in the past"
	MsgReturnBeforeDeparture   = "Return date must be same or later than departure date"
	MsgInvalidDateFormat       = "Date must be in format: yyyy-mm-dd"
)
