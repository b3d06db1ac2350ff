package passenger

import (
	"context"
	"errors"

	"github.com/explorex/reservations/internal/domain"
	"github.com/explorex/reservations/internal/repository"
	"github.com/explorex/reservations/internal/validation"
)

// ErrUnknownReservation is returned when a passenger references a
// reservation that does not exist. Handlers report it as a field-level
// validation failure rather than a 404.
var ErrUnknownReservation = errors.New("reservation does not exist")

type PassengerUseCase interface {
	List(ctx context.Context) ([]domain.Passenger, error)
	Create(ctx context.Context, input *validation.PassengerInput) (*domain.Passenger, error)
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]domain.Passenger, error)
	Update(ctx context.Context, id int64, input *validation.PassengerInput) (*domain.Passenger, error)
	Delete(ctx context.Context, id int64) error
}

type PassengerService struct {
	passengers   repository.PassengerRepository
	reservations repository.ReservationRepository
}

func NewPassengerService(passengers repository.PassengerRepository, reservations repository.ReservationRepository) *PassengerService {
	return &PassengerService{passengers: passengers, reservations: reservations}
}

func (s *PassengerService) List(ctx context.Context) ([]domain.Passenger, error) {
	return s.passengers.List(ctx)
}

func (s *PassengerService) Create(ctx context.Context, input *validation.PassengerInput) (*domain.Passenger, error) {
	if err := s.checkReservation(ctx, input.ReservationID); err != nil {
		return nil, err
	}

	p := fromInput(input)
	if err := s.passengers.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PassengerService) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	return s.passengers.GetByID(ctx, id)
}

func (s *PassengerService) ListByReservation(ctx context.Context, reservationID int64) ([]domain.Passenger, error) {
	return s.passengers.ListByReservation(ctx, reservationID)
}

func (s *PassengerService) Update(ctx context.Context, id int64, input *validation.PassengerInput) (*domain.Passenger, error) {
	if err := s.checkReservation(ctx, input.ReservationID); err != nil {
		return nil, err
	}

	p := fromInput(input)
	p.ID = id
	if err := s.passengers.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PassengerService) Delete(ctx context.Context, id int64) error {
	return s.passengers.Delete(ctx, id)
}

func (s *PassengerService) checkReservation(ctx context.Context, reservationID int64) error {
	exists, err := s.reservations.Exists(ctx, reservationID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUnknownReservation
	}
	return nil
}

func fromInput(input *validation.PassengerInput) *domain.Passenger {
	return &domain.Passenger{
		ReservationID: input.ReservationID,
		Type:          domain.PassengerType(input.Type),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		BirthDate:     input.BirthDate,
		Gender:        domain.Gender(input.Gender),
		Nationality:   input.Nationality,
	}
}

var _ PassengerUseCase = (*PassengerService)(nil)
