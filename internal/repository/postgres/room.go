package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/repository"
)

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

const roomColumns = `id, room_number, room_type, bed_type, COALESCE(max_occupants, 0),
	COALESCE(max_children, 0), status, rate_per_night_cents, rate_per_week_cents, rate_per_month_cents`

func scanRoom(row interface{ Scan(...any) error }, rm *domain.Room) error {
	return row.Scan(&rm.ID, &rm.RoomNumber, &rm.RoomType, &rm.BedType, &rm.MaxOccupants,
		&rm.MaxChildren, &rm.Status, &rm.RatePerNightCents, &rm.RatePerWeekCents, &rm.RatePerMonthCents)
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (room_number, room_type, bed_type, max_occupants, max_children, status,
	          rate_per_night_cents, rate_per_week_cents, rate_per_month_cents)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, room.RoomNumber, room.RoomType, room.BedType,
		room.MaxOccupants, room.MaxChildren, room.Status,
		room.RatePerNightCents, room.RatePerWeekCents, room.RatePerMonthCents).Scan(&room.ID)
	if isUniqueViolation(err) {
		return domain.ConflictError("room number %s already exists", room.RoomNumber)
	}
	return err
}

func (r *roomRepository) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	room := &domain.Room{}
	err := scanRoom(r.db.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id), room)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("room", id)
	}
	if err != nil {
		return nil, err
	}
	return room, nil
}

func (r *roomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `UPDATE rooms SET room_number=$1, room_type=$2, bed_type=$3, max_occupants=$4, max_children=$5,
	          status=$6, rate_per_night_cents=$7, rate_per_week_cents=$8, rate_per_month_cents=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query, room.RoomNumber, room.RoomType, room.BedType,
		room.MaxOccupants, room.MaxChildren, room.Status,
		room.RatePerNightCents, room.RatePerWeekCents, room.RatePerMonthCents, room.ID)
	return err
}

func (r *roomRepository) List(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY room_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRooms(rows)
}

func (r *roomRepository) ListAvailableSuites(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE room_type = $1 AND status = $2 ORDER BY room_number`,
		domain.RoomTypeSuite, domain.RoomStatusAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRooms(rows)
}

func (r *roomRepository) ListAvailableStandard(ctx context.Context, limit int32) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE room_type = $1 AND status = $2 ORDER BY room_number LIMIT $3`,
		domain.RoomTypeStandard, domain.RoomStatusAvailable, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRooms(rows)
}

func (r *roomRepository) CountAvailableStandard(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM rooms WHERE room_type = $1 AND status = $2`,
		domain.RoomTypeStandard, domain.RoomStatusAvailable).Scan(&count)
	return count, err
}

func (r *roomRepository) SetStatus(ctx context.Context, roomIDs []int32, status domain.RoomStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE rooms SET status=$1 WHERE id = ANY($2)`, status, pq.Array(roomIDs))
	return err
}

func collectRooms(rows *sql.Rows) ([]domain.Room, error) {
	var rooms []domain.Room
	for rows.Next() {
		var rm domain.Room
		if err := scanRoom(rows, &rm); err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}
