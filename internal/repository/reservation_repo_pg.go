package repository

import (
	"context"
	"errors"

	"github.com/explorex/reservations/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `id, user_id, first_name, last_name, email, phone, type_travel, origin, destination,
	departure_date, return_date, number_days, children_count, adults_count, aproximate_budget, message, state, created_at`

type ReservationRepository interface {
	List(ctx context.Context, state *int) ([]domain.Reservation, error)
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type PGReservationRepository struct {
	db querier
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

func (r *PGReservationRepository) List(ctx context.Context, state *int) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY id`
	args := []any{}
	if state != nil {
		query = `SELECT ` + reservationColumns + ` FROM reservations WHERE state=$1 ORDER BY id`
		args = append(args, *state)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *PGReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	return r.db.QueryRow(ctx, `INSERT INTO reservations (user_id, first_name, last_name, email, phone, type_travel, origin, destination,
			departure_date, return_date, number_days, children_count, adults_count, aproximate_budget, message, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at`,
		res.UserID, res.FirstName, res.LastName, res.Email, res.Phone, res.TypeTravel, res.Origin, res.Destination,
		res.DepartureDate, res.ReturnDate, res.NumberDays, res.ChildrenCount, res.AdultsCount, res.AproximateBudget, res.Message, res.State).
		Scan(&res.ID, &res.CreatedAt)
}

func (r *PGReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id=$1`, id)
	var res domain.Reservation
	if err := scanReservation(row, &res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *PGReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	cmd, err := r.db.Exec(ctx, `UPDATE reservations
		SET user_id=$1, first_name=$2, last_name=$3, email=$4, phone=$5, type_travel=$6, origin=$7, destination=$8,
			departure_date=$9, return_date=$10, number_days=$11, children_count=$12, adults_count=$13,
			aproximate_budget=$14, message=$15, state=$16
		WHERE id=$17`,
		res.UserID, res.FirstName, res.LastName, res.Email, res.Phone, res.TypeTravel, res.Origin, res.Destination,
		res.DepartureDate, res.ReturnDate, res.NumberDays, res.ChildrenCount, res.AdultsCount,
		res.AproximateBudget, res.Message, res.State, res.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a reservation together with its passengers in one
// transaction. Either both deletes commit or neither is observable.
func (r *PGReservationRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM passengers WHERE reservation_id=$1`, id); err != nil {
		return err
	}

	cmd, err := tx.Exec(ctx, `DELETE FROM reservations WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *PGReservationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reservations WHERE id=$1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanReservation(row pgx.Row, res *domain.Reservation) error {
	return row.Scan(&res.ID, &res.UserID, &res.FirstName, &res.LastName, &res.Email, &res.Phone, &res.TypeTravel,
		&res.Origin, &res.Destination, &res.DepartureDate, &res.ReturnDate, &res.NumberDays, &res.ChildrenCount,
		&res.AdultsCount, &res.AproximateBudget, &res.Message, &res.State, &res.CreatedAt)
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
