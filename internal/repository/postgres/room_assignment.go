package postgres

import (
	"context"
	"database/sql"
	"time"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/repository"
)

type roomAssignmentRepository struct {
	db *sql.DB
}

func NewRoomAssignmentRepository(db *sql.DB) repository.RoomAssignmentRepository {
	return &roomAssignmentRepository{db: db}
}

func (r *roomAssignmentRepository) Create(ctx context.Context, ra *domain.RoomAssignment) error {
	if ra.AssignedDate.IsZero() {
		ra.AssignedDate = time.Now()
	}
	query := `INSERT INTO reservation_rooms (reservation_id, room_id, assigned_date) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, ra.ReservationID, ra.RoomID, ra.AssignedDate).Scan(&ra.ID)
}

func (r *roomAssignmentRepository) ListByReservation(ctx context.Context, reservationID int32) ([]domain.RoomAssignment, error) {
	query := `SELECT id, reservation_id, room_id, assigned_date, check_in_time, check_out_time
	          FROM reservation_rooms WHERE reservation_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []domain.RoomAssignment
	for rows.Next() {
		var ra domain.RoomAssignment
		if err := rows.Scan(&ra.ID, &ra.ReservationID, &ra.RoomID, &ra.AssignedDate, &ra.CheckInTime, &ra.CheckOutTime); err != nil {
			return nil, err
		}
		assignments = append(assignments, ra)
	}
	return assignments, rows.Err()
}

func (r *roomAssignmentRepository) ListDetailsByReservation(ctx context.Context, reservationID int32) ([]domain.RoomAssignmentDetail, error) {
	query := `SELECT rr.id, rr.reservation_id, rr.room_id, rr.assigned_date, rr.check_in_time, rr.check_out_time,
	                 rm.room_number, rm.room_type, rm.bed_type, rm.rate_per_night_cents
	          FROM reservation_rooms rr
	          JOIN rooms rm ON rm.id = rr.room_id
	          WHERE rr.reservation_id = $1 ORDER BY rr.id`
	rows, err := r.db.QueryContext(ctx, query, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.RoomAssignmentDetail
	for rows.Next() {
		var d domain.RoomAssignmentDetail
		if err := rows.Scan(&d.ID, &d.ReservationID, &d.RoomID, &d.AssignedDate, &d.CheckInTime, &d.CheckOutTime,
			&d.RoomNumber, &d.RoomType, &d.BedType, &d.RatePerNightCents); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
