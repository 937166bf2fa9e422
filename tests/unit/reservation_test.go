package unit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/service"
	"grandstay-backend/internal/utils"
)

func newReservationService() (service.ReservationService, *MockReservationRepo, *MockRoomAssignmentRepo, *MockRoomRepo, *MockServiceRepo, *MockServiceAssignmentRepo, *MockBillRepo, *MockEmailService) {
	resRepo := new(MockReservationRepo)
	assignRepo := new(MockRoomAssignmentRepo)
	roomRepo := new(MockRoomRepo)
	svcRepo := new(MockServiceRepo)
	svcAssignRepo := new(MockServiceAssignmentRepo)
	billRepo := new(MockBillRepo)
	emailSvc := new(MockEmailService)

	svc := service.NewReservationService(resRepo, assignRepo, roomRepo, svcRepo, svcAssignRepo, billRepo, emailSvc)
	return svc, resRepo, assignRepo, roomRepo, svcRepo, svcAssignRepo, billRepo, emailSvc
}

func baseReservation() *domain.Reservation {
	checkIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		CustomerEmail: "guest@example.com",
		FirstName:     "Ada",
		LastName:      "Lovelace",
		NumAdults:     3,
		NumChildren:   0,
		CheckInDate:   checkIn,
		CheckOutDate:  checkIn.Add(24 * time.Hour),
	}
}

func TestReservationService_CreateReservation(t *testing.T) {
	svc, resRepo, _, _, _, _, _, emailSvc := newReservationService()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		res := baseReservation()

		resRepo.On("CreateWithBill", ctx, res, mock.AnythingOfType("*domain.Bill")).Return(nil)
		emailSvc.On("SendReservationConfirmation", ctx, res, mock.AnythingOfType("int32")).Return(nil)

		created, bill, err := svc.CreateReservation(ctx, res)
		assert.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusActive, created.Status)
		assert.Equal(t, domain.CreatedByCustomer, created.CreatedBy)
		// 3 adults -> 2 couple units, 1 night: 2 * 20000 * 1 = 40000, +10% tax = 44000
		assert.Equal(t, int32(44000), bill.TotalAmountCents)
		assert.Equal(t, domain.BillStatusPending, bill.Status)
	})

	t.Run("Missing Email", func(t *testing.T) {
		res := baseReservation()
		res.CustomerEmail = ""

		_, _, err := svc.CreateReservation(ctx, res)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Check-out Before Check-in", func(t *testing.T) {
		res := baseReservation()
		res.CheckOutDate = res.CheckInDate.Add(-24 * time.Hour)

		_, _, err := svc.CreateReservation(ctx, res)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Check-out Equal To Check-in", func(t *testing.T) {
		res := baseReservation()
		res.CheckOutDate = res.CheckInDate

		_, _, err := svc.CreateReservation(ctx, res)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Zero Adults Accepted", func(t *testing.T) {
		svc, resRepo, _, _, _, _, _, emailSvc := newReservationService()
		res := baseReservation()
		res.NumAdults = 0

		resRepo.On("CreateWithBill", ctx, res, mock.AnythingOfType("*domain.Bill")).Return(nil)
		emailSvc.On("SendReservationConfirmation", ctx, res, mock.AnythingOfType("int32")).Return(nil)

		_, bill, err := svc.CreateReservation(ctx, res)
		assert.NoError(t, err)
		// Still billed at one couple unit: 20000 * 1 night, +10% tax.
		assert.Equal(t, int32(22000), bill.TotalAmountCents)
	})

	t.Run("Negative Adults Rejected", func(t *testing.T) {
		res := baseReservation()
		res.NumAdults = -1

		_, _, err := svc.CreateReservation(ctx, res)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Email Failure Does Not Fail Booking", func(t *testing.T) {
		svc, resRepo, _, _, _, _, _, emailSvc := newReservationService()
		res := baseReservation()

		resRepo.On("CreateWithBill", ctx, res, mock.AnythingOfType("*domain.Bill")).Return(nil)
		emailSvc.On("SendReservationConfirmation", ctx, res, mock.AnythingOfType("int32")).
			Return(assert.AnError)

		_, bill, err := svc.CreateReservation(ctx, res)
		assert.NoError(t, err)
		assert.NotNil(t, bill)
	})
}

func TestReservationService_AssignRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, resRepo, assignRepo, roomRepo, _, _, _, _ := newReservationService()

		resRepo.On("GetByID", ctx, int32(1)).Return(&domain.Reservation{
			ID: 1, Status: domain.ReservationStatusActive,
		}, nil)
		roomRepo.On("GetByID", ctx, int32(7)).Return(&domain.Room{
			ID: 7, RoomNumber: "101", Status: domain.RoomStatusAvailable,
		}, nil)
		assignRepo.On("Create", ctx, mock.AnythingOfType("*domain.RoomAssignment")).Return(nil)

		ra, err := svc.AssignRoom(ctx, 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), ra.RoomID)
	})

	t.Run("Reservation Not Active", func(t *testing.T) {
		svc, resRepo, _, _, _, _, _, _ := newReservationService()

		resRepo.On("GetByID", ctx, int32(1)).Return(&domain.Reservation{
			ID: 1, Status: domain.ReservationStatusCompleted,
		}, nil)

		_, err := svc.AssignRoom(ctx, 1, 7)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})

	t.Run("Room Under Maintenance", func(t *testing.T) {
		svc, resRepo, _, roomRepo, _, _, _, _ := newReservationService()

		resRepo.On("GetByID", ctx, int32(1)).Return(&domain.Reservation{
			ID: 1, Status: domain.ReservationStatusActive,
		}, nil)
		roomRepo.On("GetByID", ctx, int32(7)).Return(&domain.Room{
			ID: 7, RoomNumber: "101", Status: domain.RoomStatusMaintenance,
		}, nil)

		_, err := svc.AssignRoom(ctx, 1, 7)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})
}

func TestReservationService_AssignService(t *testing.T) {
	ctx := context.Background()

	t.Run("Charge Snapshot With Tax", func(t *testing.T) {
		svc, resRepo, _, _, svcRepo, svcAssignRepo, billRepo, _ := newReservationService()

		resRepo.On("GetByID", ctx, int32(1)).Return(&domain.Reservation{
			ID: 1, Status: domain.ReservationStatusInprogress, NumAdults: 3,
		}, nil)
		svcRepo.On("GetByID", ctx, int32(4)).Return(&domain.Service{
			ID: 4, Name: "Spa", ChargePerPersonCents: 1500, Active: true,
		}, nil)
		billRepo.On("GetByReservation", ctx, int32(1)).Return(&domain.Bill{ID: 9, ReservationID: 1}, nil)

		// 1500 * 3 adults = 4500 snapshot; bill gets 4500 * 1.10 = 4950
		svcAssignRepo.On("AssignWithCharge", ctx, mock.AnythingOfType("*domain.ServiceAssignment"), int32(9), int32(4950)).Return(nil)

		sa, err := svc.AssignService(ctx, 1, 4)
		assert.NoError(t, err)
		assert.Equal(t, int32(4500), sa.TotalChargeCents)
	})

	t.Run("Inactive Service", func(t *testing.T) {
		svc, resRepo, _, _, svcRepo, _, _, _ := newReservationService()

		resRepo.On("GetByID", ctx, int32(1)).Return(&domain.Reservation{
			ID: 1, Status: domain.ReservationStatusActive, NumAdults: 2,
		}, nil)
		svcRepo.On("GetByID", ctx, int32(4)).Return(&domain.Service{
			ID: 4, Name: "Spa", ChargePerPersonCents: 1500, Active: false,
		}, nil)

		_, err := svc.AssignService(ctx, 1, 4)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})
}

func TestReservationService_CheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, resRepo, assignRepo, _, _, _, _, _ := newReservationService()

		active := &domain.Reservation{ID: 1, Status: domain.ReservationStatusActive}
		resRepo.On("GetByID", ctx, int32(1)).Return(active, nil)
		assignRepo.On("ListByReservation", ctx, int32(1)).Return([]domain.RoomAssignment{
			{ID: 1, ReservationID: 1, RoomID: 7},
			{ID: 2, ReservationID: 1, RoomID: 8},
		}, nil)
		resRepo.On("CheckIn", ctx, int32(1), []int32{7, 8}, mock.AnythingOfType("time.Time")).Return(nil)

		_, err := svc.CheckIn(ctx, 1)
		assert.NoError(t, err)
		resRepo.AssertCalled(t, "CheckIn", ctx, int32(1), []int32{7, 8}, mock.AnythingOfType("time.Time"))
	})

	t.Run("No Rooms Assigned", func(t *testing.T) {
		svc, resRepo, assignRepo, _, _, _, _, _ := newReservationService()

		resRepo.On("GetByID", ctx, int32(1)).Return(&domain.Reservation{
			ID: 1, Status: domain.ReservationStatusActive,
		}, nil)
		assignRepo.On("ListByReservation", ctx, int32(1)).Return([]domain.RoomAssignment{}, nil)

		_, err := svc.CheckIn(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
		// State must be untouched when the precondition fails.
		resRepo.AssertNotCalled(t, "CheckIn", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already Checked In", func(t *testing.T) {
		svc, resRepo, _, _, _, _, _, _ := newReservationService()

		resRepo.On("GetByID", ctx, int32(1)).Return(&domain.Reservation{
			ID: 1, Status: domain.ReservationStatusInprogress,
		}, nil)

		_, err := svc.CheckIn(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})
}

func TestReservationService_CheckOut(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, resRepo, assignRepo, _, _, _, _, _ := newReservationService()

		inprogress := &domain.Reservation{ID: 1, Status: domain.ReservationStatusInprogress}
		resRepo.On("GetByID", ctx, int32(1)).Return(inprogress, nil)
		assignRepo.On("ListByReservation", ctx, int32(1)).Return([]domain.RoomAssignment{
			{ID: 1, ReservationID: 1, RoomID: 7},
		}, nil)
		resRepo.On("CheckOut", ctx, int32(1), []int32{7}, mock.AnythingOfType("time.Time")).Return(nil)

		_, err := svc.CheckOut(ctx, 1)
		assert.NoError(t, err)
	})

	t.Run("Not Checked In", func(t *testing.T) {
		svc, resRepo, _, _, _, _, _, _ := newReservationService()

		resRepo.On("GetByID", ctx, int32(1)).Return(&domain.Reservation{
			ID: 1, Status: domain.ReservationStatusActive,
		}, nil)

		_, err := svc.CheckOut(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})
}

func TestReservationService_CancelAndNoShow(t *testing.T) {
	ctx := context.Background()

	t.Run("Cancel From Active", func(t *testing.T) {
		svc, resRepo, _, _, _, _, _, _ := newReservationService()

		resRepo.On("GetByID", ctx, int32(1)).Return(&domain.Reservation{
			ID: 1, Status: domain.ReservationStatusActive,
		}, nil)
		resRepo.On("UpdateStatus", ctx, int32(1), domain.ReservationStatusCancelled).Return(nil)

		res, err := svc.Cancel(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusCancelled, res.Status)
	})

	t.Run("Cancel From Inprogress Rejected", func(t *testing.T) {
		svc, resRepo, _, _, _, _, _, _ := newReservationService()

		resRepo.On("GetByID", ctx, int32(1)).Return(&domain.Reservation{
			ID: 1, Status: domain.ReservationStatusInprogress,
		}, nil)

		_, err := svc.Cancel(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})

	t.Run("No-show Requires Manager", func(t *testing.T) {
		svc, _, _, _, _, _, _, _ := newReservationService()

		_, err := svc.MarkNoShow(ctx, domain.RoleEmployee, 1)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("No-show By Manager", func(t *testing.T) {
		svc, resRepo, _, _, _, _, _, _ := newReservationService()

		resRepo.On("GetByID", ctx, int32(1)).Return(&domain.Reservation{
			ID: 1, Status: domain.ReservationStatusActive,
		}, nil)
		resRepo.On("UpdateStatus", ctx, int32(1), domain.ReservationStatusNoShow).Return(nil)

		res, err := svc.MarkNoShow(ctx, domain.RoleManager, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusNoShow, res.Status)
	})
}

func TestReservationService_BookSuite(t *testing.T) {
	ctx := context.Background()
	weekly := int32(120000)

	t.Run("Weekly Rate", func(t *testing.T) {
		svc, resRepo, _, roomRepo, _, _, _, emailSvc := newReservationService()

		res := baseReservation()
		res.CheckOutDate = res.CheckInDate.Add(10 * 24 * time.Hour) // 10 days -> 2 weekly periods

		roomRepo.On("GetByID", ctx, int32(5)).Return(&domain.Room{
			ID: 5, RoomNumber: "501", RoomType: domain.RoomTypeSuite,
			Status: domain.RoomStatusAvailable, RatePerWeekCents: &weekly,
		}, nil)
		resRepo.On("CreateBooking", ctx, res, mock.AnythingOfType("*domain.Bill"), []int32{5}).Return(nil)
		emailSvc.On("SendReservationConfirmation", ctx, res, mock.AnythingOfType("int32")).Return(nil)

		_, bill, err := svc.BookSuite(ctx, res, 5, utils.BookingPeriodWeekly)
		assert.NoError(t, err)
		// 120000 * 2 periods = 240000, +10% tax = 264000
		assert.Equal(t, int32(264000), bill.TotalAmountCents)
	})

	t.Run("Not A Suite", func(t *testing.T) {
		svc, _, _, roomRepo, _, _, _, _ := newReservationService()

		res := baseReservation()
		roomRepo.On("GetByID", ctx, int32(5)).Return(&domain.Room{
			ID: 5, RoomNumber: "101", RoomType: domain.RoomTypeStandard,
			Status: domain.RoomStatusAvailable, RatePerWeekCents: &weekly,
		}, nil)

		_, _, err := svc.BookSuite(ctx, res, 5, utils.BookingPeriodWeekly)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Missing Rate", func(t *testing.T) {
		svc, _, _, roomRepo, _, _, _, _ := newReservationService()

		res := baseReservation()
		roomRepo.On("GetByID", ctx, int32(5)).Return(&domain.Room{
			ID: 5, RoomNumber: "501", RoomType: domain.RoomTypeSuite,
			Status: domain.RoomStatusAvailable, RatePerWeekCents: &weekly,
		}, nil)

		_, _, err := svc.BookSuite(ctx, res, 5, utils.BookingPeriodMonthly)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestReservationService_BookBulk(t *testing.T) {
	ctx := context.Background()

	available := []domain.Room{
		{ID: 1, RoomNumber: "101"}, {ID: 2, RoomNumber: "102"},
		{ID: 3, RoomNumber: "103"}, {ID: 4, RoomNumber: "104"},
	}

	t.Run("Discounted Total", func(t *testing.T) {
		svc, resRepo, _, roomRepo, _, _, _, emailSvc := newReservationService()

		res := baseReservation()
		res.NumAdults = 2
		res.CheckOutDate = res.CheckInDate.Add(48 * time.Hour)
		res.IsTravelCompany = true
		res.TravelCompanyName = "Acme Travel"

		roomRepo.On("CountAvailableStandard", ctx).Return(int32(4), nil)
		roomRepo.On("ListAvailableStandard", ctx, int32(4)).Return(available, nil)
		resRepo.On("CreateBooking", ctx, res, mock.AnythingOfType("*domain.Bill"), []int32{1, 2, 3, 4}).Return(nil)
		emailSvc.On("SendReservationConfirmation", ctx, res, mock.AnythingOfType("int32")).Return(nil)

		_, bill, err := svc.BookBulk(ctx, res, 4)
		assert.NoError(t, err)
		// 4 rooms * (1 couple unit * 20000 * 2 nights) = 160000,
		// 15% bulk discount -> 136000, +10% tax -> 149600
		assert.Equal(t, int32(149600), bill.TotalAmountCents)
	})

	t.Run("Too Few Rooms", func(t *testing.T) {
		svc, _, _, _, _, _, _, _ := newReservationService()

		res := baseReservation()
		res.TravelCompanyName = "Acme Travel"

		_, _, err := svc.BookBulk(ctx, res, 2)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Not Enough Availability", func(t *testing.T) {
		svc, _, _, roomRepo, _, _, _, _ := newReservationService()

		res := baseReservation()
		res.TravelCompanyName = "Acme Travel"

		roomRepo.On("CountAvailableStandard", ctx).Return(int32(2), nil)

		_, _, err := svc.BookBulk(ctx, res, 4)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
		roomRepo.AssertNotCalled(t, "ListAvailableStandard", mock.Anything, mock.Anything)
	})

	t.Run("Rooms Taken Between Count And Fetch", func(t *testing.T) {
		svc, _, _, roomRepo, _, _, _, _ := newReservationService()

		res := baseReservation()
		res.TravelCompanyName = "Acme Travel"

		roomRepo.On("CountAvailableStandard", ctx).Return(int32(4), nil)
		roomRepo.On("ListAvailableStandard", ctx, int32(4)).Return(available[:2], nil)

		_, _, err := svc.BookBulk(ctx, res, 4)
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})
}
