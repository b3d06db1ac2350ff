package validation

import "github.com/explorex/reservations/internal/domain"

// ReservationInput is the normalized payload for reservation
// create/update. Every field is optional on the wire; absent fields
// normalize to their zero value and state falls back to the default.
type ReservationInput struct {
	UserID           *int64
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	TypeTravel       string
	Origin           string
	Destination      string
	DepartureDate    string
	ReturnDate       string
	NumberDays       int
	ChildrenCount    int
	AdultsCount      int
	AproximateBudget float64
	Message          string
	State            int
}

var reservationSchema = Schema{Rules: []Rule{
	{Name: "user_id", Kind: Integer},
	{Name: "first_name", Kind: String},
	{Name: "last_name", Kind: String},
	{Name: "email", Kind: String, Email: true},
	{Name: "phone", Kind: String},
	{Name: "type_travel", Kind: String},
	{Name: "origin", Kind: String},
	{Name: "destination", Kind: String},
	{Name: "departure_date", Kind: String},
	{Name: "return_date", Kind: String},
	{Name: "number_days", Kind: Integer},
	{Name: "children_count", Kind: Integer, Nonnegative: true},
	{Name: "adults_count", Kind: Integer, Positive: true},
	{Name: "aproximate_budget", Kind: Number},
	{Name: "message", Kind: String},
	{Name: "state", Kind: Integer, Default: domain.DefaultReservationState},
}}

func Reservation(payload map[string]any) (*ReservationInput, []FieldError) {
	data, errs := reservationSchema.Validate(payload)
	if errs != nil {
		return nil, errs
	}
	input := &ReservationInput{
		FirstName:        stringAt(data, "first_name"),
		LastName:         stringAt(data, "last_name"),
		Email:            stringAt(data, "email"),
		Phone:            stringAt(data, "phone"),
		TypeTravel:       stringAt(data, "type_travel"),
		Origin:           stringAt(data, "origin"),
		Destination:      stringAt(data, "destination"),
		DepartureDate:    stringAt(data, "departure_date"),
		ReturnDate:       stringAt(data, "return_date"),
		NumberDays:       intAt(data, "number_days"),
		ChildrenCount:    intAt(data, "children_count"),
		AdultsCount:      intAt(data, "adults_count"),
		AproximateBudget: floatAt(data, "aproximate_budget"),
		Message:          stringAt(data, "message"),
		State:            intAt(data, "state"),
	}
	if v, ok := data["user_id"].(int); ok {
		id := int64(v)
		input.UserID = &id
	}
	return input, nil
}
