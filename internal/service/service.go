package service

import (
	"context"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/gateway"
	"grandstay-backend/internal/utils"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.Staff, error) // access token, staff
	CreateStaff(ctx context.Context, actingRole domain.Role, email, name, password string, role domain.Role) (*domain.Staff, error)
}

type ReservationService interface {
	CreateReservation(ctx context.Context, res *domain.Reservation) (*domain.Reservation, *domain.Bill, error)
	GetReservation(ctx context.Context, id int32) (*domain.Reservation, error)
	ListReservations(ctx context.Context, email string, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error)
	AssignRoom(ctx context.Context, reservationID, roomID int32) (*domain.RoomAssignment, error)
	AssignService(ctx context.Context, reservationID, serviceID int32) (*domain.ServiceAssignment, error)
	CheckIn(ctx context.Context, reservationID int32) (*domain.Reservation, error)
	CheckOut(ctx context.Context, reservationID int32) (*domain.Reservation, error)
	Cancel(ctx context.Context, reservationID int32) (*domain.Reservation, error)
	MarkNoShow(ctx context.Context, actingRole domain.Role, reservationID int32) (*domain.Reservation, error)
	BookSuite(ctx context.Context, res *domain.Reservation, roomID int32, period utils.BookingPeriod) (*domain.Reservation, *domain.Bill, error)
	BookBulk(ctx context.Context, res *domain.Reservation, numRooms int32) (*domain.Reservation, *domain.Bill, error)
}

type BillingService interface {
	GetBill(ctx context.Context, reservationID int32) (*domain.Bill, error)
	CreateCheckoutSession(ctx context.Context, reservationID int32) (*gateway.CheckoutSession, error)
	// HandleGatewayNotification verifies and records a webhook delivery.
	// Replays of an already-recorded session are acknowledged without effect.
	HandleGatewayNotification(ctx context.Context, payload []byte, signature string) error
	RecordCashPayment(ctx context.Context, reservationID, amountCents int32) (*domain.Payment, domain.BillStatus, error)
	Statement(ctx context.Context, reservationID int32) (*domain.Statement, error)
}

type RoomService interface {
	CreateRoom(ctx context.Context, actingRole domain.Role, room *domain.Room) error
	UpdateRoom(ctx context.Context, actingRole domain.Role, room *domain.Room) error
	GetRoom(ctx context.Context, id int32) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	ListAvailableSuites(ctx context.Context) ([]domain.Room, error)
	SetMaintenance(ctx context.Context, actingRole domain.Role, roomID int32, underMaintenance bool) error
}

type CatalogService interface {
	CreateService(ctx context.Context, actingRole domain.Role, svc *domain.Service) error
	UpdateService(ctx context.Context, actingRole domain.Role, svc *domain.Service) error
	ListServices(ctx context.Context) ([]domain.Service, error)
}

type ReportService interface {
	FinancialSummary(ctx context.Context, actingRole domain.Role) (*domain.FinancialReport, error)
	RoomStatusSummary(ctx context.Context, actingRole domain.Role) (*domain.RoomStatusReport, error)
	DailyOccupancy(ctx context.Context, actingRole domain.Role, days int32) ([]domain.OccupancyDay, error)
}

type EmailService interface {
	SendReservationConfirmation(ctx context.Context, res *domain.Reservation, totalCents int32) error
	SendPaymentReceipt(ctx context.Context, email string, amountCents int32, status domain.BillStatus) error
	SendPaymentReminder(ctx context.Context, email string, outstandingCents int64) error
}
