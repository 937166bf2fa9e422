package unit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/gateway"
)

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) CreateWithBill(ctx context.Context, res *domain.Reservation, bill *domain.Bill) error {
	args := m.Called(ctx, res, bill)
	return args.Error(0)
}
func (m *MockReservationRepo) CreateBooking(ctx context.Context, res *domain.Reservation, bill *domain.Bill, roomIDs []int32) error {
	args := m.Called(ctx, res, bill, roomIDs)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) Update(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockReservationRepo) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockReservationRepo) CheckIn(ctx context.Context, id int32, roomIDs []int32, now time.Time) error {
	args := m.Called(ctx, id, roomIDs, now)
	return args.Error(0)
}
func (m *MockReservationRepo) CheckOut(ctx context.Context, id int32, roomIDs []int32, now time.Time) error {
	args := m.Called(ctx, id, roomIDs, now)
	return args.Error(0)
}
func (m *MockReservationRepo) List(ctx context.Context, email string, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, email, status, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}

// MockRoomAssignmentRepo
type MockRoomAssignmentRepo struct {
	mock.Mock
}

func (m *MockRoomAssignmentRepo) Create(ctx context.Context, ra *domain.RoomAssignment) error {
	args := m.Called(ctx, ra)
	return args.Error(0)
}
func (m *MockRoomAssignmentRepo) ListByReservation(ctx context.Context, reservationID int32) ([]domain.RoomAssignment, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).([]domain.RoomAssignment), args.Error(1)
}
func (m *MockRoomAssignmentRepo) ListDetailsByReservation(ctx context.Context, reservationID int32) ([]domain.RoomAssignmentDetail, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).([]domain.RoomAssignmentDetail), args.Error(1)
}

// MockRoomRepo
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomRepo) ListAvailableSuites(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomRepo) ListAvailableStandard(ctx context.Context, limit int32) ([]domain.Room, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomRepo) CountAvailableStandard(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockRoomRepo) SetStatus(ctx context.Context, roomIDs []int32, status domain.RoomStatus) error {
	args := m.Called(ctx, roomIDs, status)
	return args.Error(0)
}

// MockServiceRepo
type MockServiceRepo struct {
	mock.Mock
}

func (m *MockServiceRepo) Create(ctx context.Context, svc *domain.Service) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}
func (m *MockServiceRepo) GetByID(ctx context.Context, id int32) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}
func (m *MockServiceRepo) Update(ctx context.Context, svc *domain.Service) error {
	args := m.Called(ctx, svc)
	return args.Error(0)
}
func (m *MockServiceRepo) List(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Service), args.Error(1)
}

// MockServiceAssignmentRepo
type MockServiceAssignmentRepo struct {
	mock.Mock
}

func (m *MockServiceAssignmentRepo) AssignWithCharge(ctx context.Context, sa *domain.ServiceAssignment, billID, chargeWithTaxCents int32) error {
	args := m.Called(ctx, sa, billID, chargeWithTaxCents)
	return args.Error(0)
}
func (m *MockServiceAssignmentRepo) ListDetailsByReservation(ctx context.Context, reservationID int32) ([]domain.ServiceAssignmentDetail, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).([]domain.ServiceAssignmentDetail), args.Error(1)
}

// MockBillRepo
type MockBillRepo struct {
	mock.Mock
}

func (m *MockBillRepo) GetByID(ctx context.Context, id int32) (*domain.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}
func (m *MockBillRepo) GetByReservation(ctx context.Context, reservationID int32) (*domain.Bill, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}
func (m *MockBillRepo) AddCharge(ctx context.Context, billID, amountCents int32) error {
	args := m.Called(ctx, billID, amountCents)
	return args.Error(0)
}
func (m *MockBillRepo) RecomputeStatus(ctx context.Context, billID int32) (domain.BillStatus, error) {
	args := m.Called(ctx, billID)
	return args.Get(0).(domain.BillStatus), args.Error(1)
}
func (m *MockBillRepo) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Bill, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Bill), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Record(ctx context.Context, p *domain.Payment) (domain.BillStatus, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.BillStatus), args.Error(1)
}
func (m *MockPaymentRepo) GetByExternalRef(ctx context.Context, ref string) (*domain.Payment, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListByBill(ctx context.Context, billID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, billID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) SumByBill(ctx context.Context, billID int32) (int64, error) {
	args := m.Called(ctx, billID)
	return args.Get(0).(int64), args.Error(1)
}

// MockStaffRepo
type MockStaffRepo struct {
	mock.Mock
}

func (m *MockStaffRepo) Create(ctx context.Context, s *domain.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStaffRepo) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendReservationConfirmation(ctx context.Context, res *domain.Reservation, totalCents int32) error {
	args := m.Called(ctx, res, totalCents)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReceipt(ctx context.Context, email string, amountCents int32, status domain.BillStatus) error {
	args := m.Called(ctx, email, amountCents, status)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReminder(ctx context.Context, email string, outstandingCents int64) error {
	args := m.Called(ctx, email, outstandingCents)
	return args.Error(0)
}

// MockPaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCheckoutSession(billID, reservationID int32, description string, amountCents int64) (*gateway.CheckoutSession, error) {
	args := m.Called(billID, reservationID, description, amountCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.CheckoutSession), args.Error(1)
}
func (m *MockPaymentGateway) VerifyWebhook(payload []byte, signature string) (*gateway.CompletedPayment, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.CompletedPayment), args.Error(1)
}
