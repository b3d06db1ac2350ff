package validation

// PassengerInput is the normalized payload for passenger create/update.
type PassengerInput struct {
	ReservationID int64
	Type          string
	FirstName     string
	LastName      string
	BirthDate     string
	Gender        string
	Nationality   string
}

var passengerSchema = Schema{Rules: []Rule{
	{Name: "reservation_id", Kind: Integer, Required: true, Positive: true},
	{Name: "type", Kind: String, Required: true, Enum: []string{"adult", "child"}},
	{Name: "first_name", Kind: String, Required: true},
	{Name: "last_name", Kind: String, Required: true},
	{Name: "birth_date", Kind: String, Required: true},
	{Name: "gender", Kind: String, Required: true, Enum: []string{"male", "female", "other"}},
	{Name: "nationality", Kind: String, Required: true},
}}

func Passenger(payload map[string]any) (*PassengerInput, []FieldError) {
	data, errs := passengerSchema.Validate(payload)
	if errs != nil {
		return nil, errs
	}
	return &PassengerInput{
		ReservationID: int64(intAt(data, "reservation_id")),
		Type:          stringAt(data, "type"),
		FirstName:     stringAt(data, "first_name"),
		LastName:      stringAt(data, "last_name"),
		BirthDate:     stringAt(data, "birth_date"),
		Gender:        stringAt(data, "gender"),
		Nationality:   stringAt(data, "nationality"),
	}, nil
}
