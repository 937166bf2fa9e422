package repository

import (
	"context"
	"time"

	"grandstay-backend/internal/domain"
)

type ReservationRepository interface {
	// CreateWithBill persists the reservation and its bill in one
	// transaction; a reservation never exists without a bill.
	CreateWithBill(ctx context.Context, res *domain.Reservation, bill *domain.Bill) error
	// CreateBooking additionally assigns rooms at booking time (suite and
	// bulk bookings), still in a single transaction.
	CreateBooking(ctx context.Context, res *domain.Reservation, bill *domain.Bill, roomIDs []int32) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
	UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error
	// CheckIn flips the reservation to Inprogress, stamps the reservation
	// and every room assignment, and marks the rooms Occupied — atomically.
	CheckIn(ctx context.Context, id int32, roomIDs []int32, now time.Time) error
	// CheckOut is the inverse: Completed, checkout stamps, rooms Available.
	CheckOut(ctx context.Context, id int32, roomIDs []int32, now time.Time) error
	List(ctx context.Context, email string, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error)
}

type RoomAssignmentRepository interface {
	Create(ctx context.Context, ra *domain.RoomAssignment) error
	ListByReservation(ctx context.Context, reservationID int32) ([]domain.RoomAssignment, error)
	ListDetailsByReservation(ctx context.Context, reservationID int32) ([]domain.RoomAssignmentDetail, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int32) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	List(ctx context.Context) ([]domain.Room, error)
	ListAvailableSuites(ctx context.Context) ([]domain.Room, error)
	ListAvailableStandard(ctx context.Context, limit int32) ([]domain.Room, error)
	CountAvailableStandard(ctx context.Context) (int32, error)
	SetStatus(ctx context.Context, roomIDs []int32, status domain.RoomStatus) error
}

type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) error
	GetByID(ctx context.Context, id int32) (*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	List(ctx context.Context) ([]domain.Service, error)
}

type ServiceAssignmentRepository interface {
	// AssignWithCharge inserts the assignment and adds the taxed charge to
	// the bill in one transaction.
	AssignWithCharge(ctx context.Context, sa *domain.ServiceAssignment, billID, chargeWithTaxCents int32) error
	ListDetailsByReservation(ctx context.Context, reservationID int32) ([]domain.ServiceAssignmentDetail, error)
}

type BillRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Bill, error)
	GetByReservation(ctx context.Context, reservationID int32) (*domain.Bill, error)
	AddCharge(ctx context.Context, billID, amountCents int32) error
	// RecomputeStatus re-derives the bill status from the payment sum.
	// Idempotent: the same payment set always yields the same status.
	RecomputeStatus(ctx context.Context, billID int32) (domain.BillStatus, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Bill, error)
}

type PaymentRepository interface {
	// Record inserts the payment and recomputes the bill status in one
	// transaction, returning the new status.
	Record(ctx context.Context, p *domain.Payment) (domain.BillStatus, error)
	GetByExternalRef(ctx context.Context, ref string) (*domain.Payment, error)
	ListByBill(ctx context.Context, billID int32) ([]domain.Payment, error)
	SumByBill(ctx context.Context, billID int32) (int64, error)
}

type StaffRepository interface {
	Create(ctx context.Context, s *domain.Staff) error
	GetByEmail(ctx context.Context, email string) (*domain.Staff, error)
}

type ReportRepository interface {
	FinancialSummary(ctx context.Context) (*domain.FinancialReport, error)
	RoomStatusSummary(ctx context.Context) (*domain.RoomStatusReport, error)
	DailyOccupancy(ctx context.Context, days int32) ([]domain.OccupancyDay, error)
}
