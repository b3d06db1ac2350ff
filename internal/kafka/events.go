package kafka

import (
	"time"

	"github.com/explorex/reservations/internal/domain"
)

const (
	EventReservationCreated = "reservation_created"
	EventReservationUpdated = "reservation_updated"
	EventPassengerManifest  = "passenger_manifest"
)

// ReservationEvent is the notification payload published after a
// successful reservation write. Created/updated events carry the
// reservation; manifest events carry its current passenger list.
type ReservationEvent struct {
	ID          string              `json:"id"`
	Type        string              `json:"type"`
	To          string              `json:"to"`
	Reservation *domain.Reservation `json:"reservation,omitempty"`
	Passengers  []domain.Passenger  `json:"passengers,omitempty"`
	OccurredAt  time.Time           `json:"occurred_at"`
}
