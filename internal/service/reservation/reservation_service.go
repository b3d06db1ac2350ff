package reservation

import (
	"context"
	"log"
	"time"

	"github.com/explorex/reservations/internal/domain"
	"github.com/explorex/reservations/internal/kafka"
	"github.com/explorex/reservations/internal/repository"
	"github.com/explorex/reservations/internal/validation"
	"github.com/google/uuid"
)

type ReservationUseCase interface {
	List(ctx context.Context, state *int) ([]domain.Reservation, error)
	Create(ctx context.Context, input *validation.ReservationInput) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, id int64, input *validation.ReservationInput) (*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ReservationService struct {
	reservations       repository.ReservationRepository
	passengers         repository.PassengerRepository
	producer           Producer
	notificationsTopic string
	alertTo            string
}

type ReservationServiceOption func(*ReservationService)

// WithAlertRecipient sets the address reservation alert emails go to.
func WithAlertRecipient(to string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.alertTo = to
	}
}

func NewReservationService(
	reservations repository.ReservationRepository,
	passengers repository.PassengerRepository,
	producer Producer,
	notificationsTopic string,
	opts ...ReservationServiceOption,
) *ReservationService {
	service := &ReservationService{
		reservations:       reservations,
		passengers:         passengers,
		producer:           producer,
		notificationsTopic: notificationsTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *ReservationService) List(ctx context.Context, state *int) ([]domain.Reservation, error) {
	return s.reservations.List(ctx, state)
}

func (s *ReservationService) Create(ctx context.Context, input *validation.ReservationInput) (*domain.Reservation, error) {
	res := fromInput(input)
	if err := s.reservations.Create(ctx, res); err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventReservationCreated, res, nil)
	return res, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// Update rewrites the reservation row and fires two notifications: one
// for the update itself and one carrying the current passenger list.
func (s *ReservationService) Update(ctx context.Context, id int64, input *validation.ReservationInput) (*domain.Reservation, error) {
	res := fromInput(input)
	res.ID = id
	if err := s.reservations.Update(ctx, res); err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventReservationUpdated, res, nil)

	passengers, err := s.passengers.ListByReservation(ctx, id)
	if err != nil {
		log.Printf("list passengers for reservation %d: %v", id, err)
		return res, nil
	}
	s.publish(ctx, kafka.EventPassengerManifest, res, passengers)

	return res, nil
}

// Delete cascades to the reservation's passengers inside the repository
// transaction; either everything is removed or nothing is.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	return s.reservations.Delete(ctx, id)
}

// publish is best-effort. A failed notification is logged and never
// propagated to the caller or the originating write.
func (s *ReservationService) publish(ctx context.Context, eventType string, res *domain.Reservation, passengers []domain.Passenger) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}
	event := kafka.ReservationEvent{
		ID:          uuid.NewString(),
		Type:        eventType,
		To:          s.alertTo,
		Reservation: res,
		Passengers:  passengers,
		OccurredAt:  time.Now(),
	}
	if err := s.producer.Publish(ctx, s.notificationsTopic, event.ID, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for reservation %d: %v", eventType, res.ID, err)
	}
}

func fromInput(input *validation.ReservationInput) *domain.Reservation {
	return &domain.Reservation{
		UserID:           input.UserID,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		Phone:            input.Phone,
		TypeTravel:       input.TypeTravel,
		Origin:           input.Origin,
		Destination:      input.Destination,
		DepartureDate:    input.DepartureDate,
		ReturnDate:       input.ReturnDate,
		NumberDays:       input.NumberDays,
		ChildrenCount:    input.ChildrenCount,
		AdultsCount:      input.AdultsCount,
		AproximateBudget: input.AproximateBudget,
		Message:          input.Message,
		State:            input.State,
	}
}

var _ ReservationUseCase = (*ReservationService)(nil)
