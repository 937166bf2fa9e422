package repos

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/repository/postgres"
)

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "customer_email", "first_name", "last_name", "num_adults", "num_children",
		"check_in_date", "check_out_date", "status", "created_by", "is_travel_company",
		"travel_company_name", "created_at", "updated_at",
	})
}

func TestReservationRepository_CreateWithBill(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	res := &domain.Reservation{
		CustomerEmail: "guest@example.com",
		FirstName:     "Ada",
		LastName:      "Lovelace",
		NumAdults:     3,
		CheckInDate:   time.Now(),
		CheckOutDate:  time.Now().Add(24 * time.Hour),
		Status:        domain.ReservationStatusActive,
		CreatedBy:     domain.CreatedByCustomer,
	}
	bill := &domain.Bill{TotalAmountCents: 44000, Status: domain.BillStatusPending}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO reservations").
			WithArgs(res.CustomerEmail, res.FirstName, res.LastName, res.NumAdults, res.NumChildren,
				res.CheckInDate, res.CheckOutDate, res.Status, res.CreatedBy, res.IsTravelCompany,
				res.TravelCompanyName, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery("INSERT INTO bills").
			WithArgs(int32(1), bill.TotalAmountCents, bill.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
		mock.ExpectCommit()

		err := repo.CreateWithBill(ctx, res, bill)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), res.ID)
		assert.Equal(t, int32(9), bill.ID)
		assert.Equal(t, int32(1), bill.ReservationID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate Bill Rolls Back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO reservations").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectQuery("INSERT INTO bills").
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		err := repo.CreateWithBill(ctx, res, &domain.Bill{})
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReservationRepository_CreateBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	res := &domain.Reservation{
		CustomerEmail: "ops@acme-travel.example.com",
		FirstName:     "Ops",
		LastName:      "Desk",
		NumAdults:     2,
		CheckInDate:   time.Now(),
		CheckOutDate:  time.Now().Add(48 * time.Hour),
		Status:        domain.ReservationStatusActive,
		CreatedBy:     domain.CreatedByClerk,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO reservations").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery("INSERT INTO bills").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec("INSERT INTO reservation_rooms").
		WithArgs(int32(3), int32(7), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO reservation_rooms").
		WithArgs(int32(3), int32(8), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err = repo.CreateBooking(ctx, res, &domain.Bill{TotalAmountCents: 149600, Status: domain.BillStatusPending}, []int32{7, 8})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := reservationRows().AddRow(
			1, "guest@example.com", "Ada", "Lovelace", 3, 0,
			time.Now(), time.Now().Add(24*time.Hour), "Active", "Customer", false,
			"", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		res, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), res.ID)
		assert.Equal(t, domain.ReservationStatusActive, res.Status)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(reservationRows())

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReservationRepository_CheckIn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE reservations SET status").
		WithArgs(domain.ReservationStatusInprogress, now, int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE reservation_rooms SET check_in_time").
		WithArgs(now, int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE rooms SET status").
		WithArgs(domain.RoomStatusOccupied, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err = repo.CheckIn(ctx, 1, []int32{7, 8}, now)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_CheckOut(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE reservations SET status").
		WithArgs(domain.ReservationStatusCompleted, now, int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE reservation_rooms SET check_out_time").
		WithArgs(now, int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE rooms SET status").
		WithArgs(domain.RoomStatusAvailable, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.CheckOut(ctx, 1, []int32{7}, now)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count").
		WithArgs("guest@example.com", "Active").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	rows := reservationRows().AddRow(
		1, "guest@example.com", "Ada", "Lovelace", 3, 0,
		time.Now(), time.Now().Add(24*time.Hour), "Active", "Customer", false,
		"", time.Now(), time.Now())
	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE 1=1").
		WithArgs("guest@example.com", "Active", int32(20), int32(0)).
		WillReturnRows(rows)

	reservations, total, err := repo.List(ctx, "guest@example.com", domain.ReservationStatusActive, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), total)
	assert.Len(t, reservations, 1)
}
