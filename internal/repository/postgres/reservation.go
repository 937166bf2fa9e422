package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, customer_email, first_name, last_name, num_adults, num_children,
	check_in_date, check_out_date, status, created_by, is_travel_company,
	COALESCE(travel_company_name, ''), created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }, r *domain.Reservation) error {
	return row.Scan(&r.ID, &r.CustomerEmail, &r.FirstName, &r.LastName, &r.NumAdults, &r.NumChildren,
		&r.CheckInDate, &r.CheckOutDate, &r.Status, &r.CreatedBy, &r.IsTravelCompany,
		&r.TravelCompanyName, &r.CreatedAt, &r.UpdatedAt)
}

func insertReservationTx(ctx context.Context, tx *sql.Tx, r *domain.Reservation) error {
	query := `INSERT INTO reservations (customer_email, first_name, last_name, num_adults, num_children,
	          check_in_date, check_out_date, status, created_by, is_travel_company, travel_company_name,
	          created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12, $13) RETURNING id`
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	return tx.QueryRowContext(ctx, query, r.CustomerEmail, r.FirstName, r.LastName, r.NumAdults, r.NumChildren,
		r.CheckInDate, r.CheckOutDate, r.Status, r.CreatedBy, r.IsTravelCompany, r.TravelCompanyName,
		now, now).Scan(&r.ID)
}

func insertBillTx(ctx context.Context, tx *sql.Tx, b *domain.Bill) error {
	query := `INSERT INTO bills (reservation_id, total_amount_cents, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	err := tx.QueryRowContext(ctx, query, b.ReservationID, b.TotalAmountCents, b.Status, now, now).Scan(&b.ID)
	if isUniqueViolation(err) {
		return domain.ConflictError("bill already exists for reservation %d", b.ReservationID)
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *reservationRepository) CreateWithBill(ctx context.Context, res *domain.Reservation, bill *domain.Bill) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertReservationTx(ctx, tx, res); err != nil {
		return err
	}
	bill.ReservationID = res.ID
	if err := insertBillTx(ctx, tx, bill); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *reservationRepository) CreateBooking(ctx context.Context, res *domain.Reservation, bill *domain.Bill, roomIDs []int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertReservationTx(ctx, tx, res); err != nil {
		return err
	}
	bill.ReservationID = res.ID
	if err := insertBillTx(ctx, tx, bill); err != nil {
		return err
	}

	now := time.Now()
	for _, roomID := range roomIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO reservation_rooms (reservation_id, room_id, assigned_date) VALUES ($1, $2, $3)`,
			res.ID, roomID, now)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	err := scanReservation(r.db.QueryRowContext(ctx, query, id), res)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("reservation", id)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `UPDATE reservations SET customer_email=$1, first_name=$2, last_name=$3, num_adults=$4,
	          num_children=$5, check_in_date=$6, check_out_date=$7, status=$8, created_by=$9, updated_at=$10
	          WHERE id=$11`
	_, err := r.db.ExecContext(ctx, query, res.CustomerEmail, res.FirstName, res.LastName, res.NumAdults,
		res.NumChildren, res.CheckInDate, res.CheckOutDate, res.Status, res.CreatedBy, time.Now(), res.ID)
	return err
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET status=$1, updated_at=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFoundError("reservation", id)
	}
	return nil
}

func (r *reservationRepository) CheckIn(ctx context.Context, id int32, roomIDs []int32, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE reservations SET status=$1, check_in_date=$2, updated_at=$2 WHERE id=$3`,
		domain.ReservationStatusInprogress, now, id)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE reservation_rooms SET check_in_time=$1 WHERE reservation_id=$2`, now, id)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE rooms SET status=$1 WHERE id = ANY($2)`, domain.RoomStatusOccupied, pq.Array(roomIDs))
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *reservationRepository) CheckOut(ctx context.Context, id int32, roomIDs []int32, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE reservations SET status=$1, check_out_date=$2, updated_at=$2 WHERE id=$3`,
		domain.ReservationStatusCompleted, now, id)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE reservation_rooms SET check_out_time=$1 WHERE reservation_id=$2`, now, id)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE rooms SET status=$1 WHERE id = ANY($2)`, domain.RoomStatusAvailable, pq.Array(roomIDs))
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *reservationRepository) List(ctx context.Context, email string, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if email != "" {
		query += fmt.Sprintf(" AND customer_email = $%d", argIdx)
		args = append(args, email)
		argIdx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, 0, err
		}
		reservations = append(reservations, res)
	}
	return reservations, count, rows.Err()
}
