package domain

import "time"

type PassengerType string

const (
	PassengerTypeAdult PassengerType = "adult"
	PassengerTypeChild PassengerType = "child"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Passenger struct {
	ID            int64         `json:"id"`
	ReservationID int64         `json:"reservation_id"`
	Type          PassengerType `json:"type"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	BirthDate     string        `json:"birth_date"`
	Gender        Gender        `json:"gender"`
	Nationality   string        `json:"nationality"`
	CreatedAt     time.Time     `json:"created_at"`
}
