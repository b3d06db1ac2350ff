package domain

import "time"

// DefaultReservationState is assigned to new reservations unless the
// client supplies a state explicitly.
const DefaultReservationState = 1

type Reservation struct {
	ID               int64     `json:"id"`
	UserID           *int64    `json:"user_id,omitempty"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	TypeTravel       string    `json:"type_travel"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	DepartureDate    string    `json:"departure_date"`
	ReturnDate       string    `json:"return_date"`
	NumberDays       int       `json:"number_days"`
	ChildrenCount    int       `json:"children_count"`
	AdultsCount      int       `json:"adults_count"`
	AproximateBudget float64   `json:"aproximate_budget"`
	Message          string    `json:"message"`
	State            int       `json:"state"`
	CreatedAt        time.Time `json:"created_at"`
}
