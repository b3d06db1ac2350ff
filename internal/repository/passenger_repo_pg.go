package repository

import (
	"context"
	"errors"

	"github.com/explorex/reservations/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const passengerColumns = `id, reservation_id, type, first_name, last_name, birth_date, gender, nationality, created_at`

type PassengerRepository interface {
	List(ctx context.Context) ([]domain.Passenger, error)
	Create(ctx context.Context, p *domain.Passenger) error
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]domain.Passenger, error)
	Update(ctx context.Context, p *domain.Passenger) error
	Delete(ctx context.Context, id int64) error
}

type PGPassengerRepository struct {
	db querier
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT `+passengerColumns+` FROM passengers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPassengers(rows)
}

func (r *PGPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	return r.db.QueryRow(ctx, `INSERT INTO passengers (reservation_id, type, first_name, last_name, birth_date, gender, nationality)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		p.ReservationID, p.Type, p.FirstName, p.LastName, p.BirthDate, p.Gender, p.Nationality).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE id=$1`, id)
	var p domain.Passenger
	if err := scanPassenger(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPassengerRepository) ListByReservation(ctx context.Context, reservationID int64) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE reservation_id=$1 ORDER BY id`, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPassengers(rows)
}

func (r *PGPassengerRepository) Update(ctx context.Context, p *domain.Passenger) error {
	cmd, err := r.db.Exec(ctx, `UPDATE passengers
		SET reservation_id=$1, type=$2, first_name=$3, last_name=$4, birth_date=$5, gender=$6, nationality=$7
		WHERE id=$8`,
		p.ReservationID, p.Type, p.FirstName, p.LastName, p.BirthDate, p.Gender, p.Nationality, p.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGPassengerRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM passengers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPassenger(row pgx.Row, p *domain.Passenger) error {
	return row.Scan(&p.ID, &p.ReservationID, &p.Type, &p.FirstName, &p.LastName, &p.BirthDate, &p.Gender, &p.Nationality, &p.CreatedAt)
}

func collectPassengers(rows pgx.Rows) ([]domain.Passenger, error) {
	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := scanPassenger(rows, &p); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
