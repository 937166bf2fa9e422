package service

import (
	"context"
	"strings"
	"time"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/logger"
	"grandstay-backend/internal/repository"
	"grandstay-backend/internal/utils"
)

type reservationService struct {
	reservations repository.ReservationRepository
	assignments  repository.RoomAssignmentRepository
	rooms        repository.RoomRepository
	services     repository.ServiceRepository
	svcAssigns   repository.ServiceAssignmentRepository
	bills        repository.BillRepository
	email        EmailService
}

func NewReservationService(
	reservations repository.ReservationRepository,
	assignments repository.RoomAssignmentRepository,
	rooms repository.RoomRepository,
	services repository.ServiceRepository,
	svcAssigns repository.ServiceAssignmentRepository,
	bills repository.BillRepository,
	email EmailService,
) ReservationService {
	return &reservationService{
		reservations: reservations,
		assignments:  assignments,
		rooms:        rooms,
		services:     services,
		svcAssigns:   svcAssigns,
		bills:        bills,
		email:        email,
	}
}

func validateReservation(res *domain.Reservation) error {
	if strings.TrimSpace(res.CustomerEmail) == "" {
		return domain.ValidationError("customer email is required")
	}
	if strings.TrimSpace(res.FirstName) == "" || strings.TrimSpace(res.LastName) == "" {
		return domain.ValidationError("guest first and last name are required")
	}
	if res.NumAdults < 0 {
		return domain.ValidationError("number of adults cannot be negative")
	}
	if res.NumChildren < 0 {
		return domain.ValidationError("number of children cannot be negative")
	}
	if res.CheckInDate.IsZero() || res.CheckOutDate.IsZero() {
		return domain.ValidationError("check-in and check-out dates are required")
	}
	if !res.CheckOutDate.After(res.CheckInDate) {
		return domain.ValidationError("check-out date must be after check-in date")
	}
	if res.IsTravelCompany && strings.TrimSpace(res.TravelCompanyName) == "" {
		return domain.ValidationError("travel company name is required for company bookings")
	}
	return nil
}

func (s *reservationService) CreateReservation(ctx context.Context, res *domain.Reservation) (*domain.Reservation, *domain.Bill, error) {
	logger.EnterMethod("ReservationService.CreateReservation", "email", res.CustomerEmail)

	if err := validateReservation(res); err != nil {
		return nil, nil, err
	}

	res.Status = domain.ReservationStatusActive
	if res.CreatedBy == "" {
		res.CreatedBy = domain.CreatedByCustomer
	}

	nights := utils.Nights(res.CheckInDate, res.CheckOutDate)
	total := utils.WithTax(utils.NightlyBase(res.NumAdults, nights))

	bill := &domain.Bill{
		TotalAmountCents: total,
		Status:           domain.BillStatusPending,
	}
	if err := s.reservations.CreateWithBill(ctx, res, bill); err != nil {
		logger.ExitMethodWithError("ReservationService.CreateReservation", err)
		return nil, nil, err
	}

	if err := s.email.SendReservationConfirmation(ctx, res, bill.TotalAmountCents); err != nil {
		// The booking stands even when the confirmation email fails.
		logger.Warn("confirmation email not sent", "reservationId", res.ID, "error", err)
	}

	logger.ExitMethod("ReservationService.CreateReservation", "reservationId", res.ID, "billId", bill.ID)
	return res, bill, nil
}

func (s *reservationService) GetReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

func (s *reservationService) ListReservations(ctx context.Context, email string, status domain.ReservationStatus, page, pageSize int32) ([]domain.Reservation, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.reservations.List(ctx, email, status, page, pageSize)
}

func (s *reservationService) AssignRoom(ctx context.Context, reservationID, roomID int32) (*domain.RoomAssignment, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationStatusActive {
		return nil, domain.PreconditionError("rooms can only be assigned to an Active reservation, current status is %s", res.Status)
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.Status != domain.RoomStatusAvailable {
		return nil, domain.PreconditionError("room %s is %s", room.RoomNumber, room.Status)
	}

	ra := &domain.RoomAssignment{
		ReservationID: reservationID,
		RoomID:        roomID,
	}
	if err := s.assignments.Create(ctx, ra); err != nil {
		return nil, err
	}
	return ra, nil
}

func (s *reservationService) AssignService(ctx context.Context, reservationID, serviceID int32) (*domain.ServiceAssignment, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationStatusActive && res.Status != domain.ReservationStatusInprogress {
		return nil, domain.PreconditionError("services cannot be added to a %s reservation", res.Status)
	}

	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, domain.PreconditionError("service %s is no longer offered", svc.Name)
	}

	bill, err := s.bills.GetByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	// The charge is snapshotted per adult at assignment time; the bill gets
	// the taxed amount.
	charge := utils.ServiceCharge(res.NumAdults, svc.ChargePerPersonCents)
	sa := &domain.ServiceAssignment{
		ReservationID:    reservationID,
		ServiceID:        serviceID,
		TotalChargeCents: charge,
	}
	if err := s.svcAssigns.AssignWithCharge(ctx, sa, bill.ID, utils.WithTax(charge)); err != nil {
		return nil, err
	}
	return sa, nil
}

func (s *reservationService) CheckIn(ctx context.Context, reservationID int32) (*domain.Reservation, error) {
	logger.EnterMethod("ReservationService.CheckIn", "reservationId", reservationID)

	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationStatusActive {
		return nil, domain.PreconditionError("only an Active reservation can check in, current status is %s", res.Status)
	}

	assignments, err := s.assignments.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, domain.PreconditionError("reservation %d has no rooms assigned", reservationID)
	}

	roomIDs := make([]int32, len(assignments))
	for i, a := range assignments {
		roomIDs[i] = a.RoomID
	}
	if err := s.reservations.CheckIn(ctx, reservationID, roomIDs, time.Now()); err != nil {
		logger.ExitMethodWithError("ReservationService.CheckIn", err)
		return nil, err
	}

	logger.ExitMethod("ReservationService.CheckIn", "reservationId", reservationID, "rooms", len(roomIDs))
	return s.reservations.GetByID(ctx, reservationID)
}

func (s *reservationService) CheckOut(ctx context.Context, reservationID int32) (*domain.Reservation, error) {
	logger.EnterMethod("ReservationService.CheckOut", "reservationId", reservationID)

	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationStatusInprogress {
		return nil, domain.PreconditionError("only an Inprogress reservation can check out, current status is %s", res.Status)
	}

	assignments, err := s.assignments.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	roomIDs := make([]int32, len(assignments))
	for i, a := range assignments {
		roomIDs[i] = a.RoomID
	}
	if err := s.reservations.CheckOut(ctx, reservationID, roomIDs, time.Now()); err != nil {
		logger.ExitMethodWithError("ReservationService.CheckOut", err)
		return nil, err
	}

	logger.ExitMethod("ReservationService.CheckOut", "reservationId", reservationID)
	return s.reservations.GetByID(ctx, reservationID)
}

func (s *reservationService) Cancel(ctx context.Context, reservationID int32) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationStatusActive {
		return nil, domain.PreconditionError("only an Active reservation can be cancelled, current status is %s", res.Status)
	}
	if err := s.reservations.UpdateStatus(ctx, reservationID, domain.ReservationStatusCancelled); err != nil {
		return nil, err
	}
	res.Status = domain.ReservationStatusCancelled
	return res, nil
}

func (s *reservationService) MarkNoShow(ctx context.Context, actingRole domain.Role, reservationID int32) (*domain.Reservation, error) {
	if !actingRole.CanManage() {
		return nil, domain.ForbiddenError("marking a no-show requires the manager role")
	}
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationStatusActive {
		return nil, domain.PreconditionError("only an Active reservation can be marked no-show, current status is %s", res.Status)
	}
	if err := s.reservations.UpdateStatus(ctx, reservationID, domain.ReservationStatusNoShow); err != nil {
		return nil, err
	}
	res.Status = domain.ReservationStatusNoShow
	return res, nil
}

func (s *reservationService) BookSuite(ctx context.Context, res *domain.Reservation, roomID int32, period utils.BookingPeriod) (*domain.Reservation, *domain.Bill, error) {
	logger.EnterMethod("ReservationService.BookSuite", "roomId", roomID, "period", period)

	if err := validateReservation(res); err != nil {
		return nil, nil, err
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	if room.RoomType != domain.RoomTypeSuite {
		return nil, nil, domain.ValidationError("room %s is not a suite", room.RoomNumber)
	}
	if room.Status != domain.RoomStatusAvailable {
		return nil, nil, domain.PreconditionError("suite %s is %s", room.RoomNumber, room.Status)
	}

	rate, err := utils.SuiteRateFor(room, period)
	if err != nil {
		return nil, nil, domain.ValidationError("%v", err)
	}
	periods, err := utils.PeriodCount(res.CheckInDate, res.CheckOutDate, period)
	if err != nil {
		return nil, nil, domain.ValidationError("%v", err)
	}

	res.Status = domain.ReservationStatusActive
	if res.CreatedBy == "" {
		res.CreatedBy = domain.CreatedByCustomer
	}

	bill := &domain.Bill{
		TotalAmountCents: utils.WithTax(utils.SuitePeriodCharge(rate, periods)),
		Status:           domain.BillStatusPending,
	}
	if err := s.reservations.CreateBooking(ctx, res, bill, []int32{roomID}); err != nil {
		logger.ExitMethodWithError("ReservationService.BookSuite", err)
		return nil, nil, err
	}

	if err := s.email.SendReservationConfirmation(ctx, res, bill.TotalAmountCents); err != nil {
		logger.Warn("confirmation email not sent", "reservationId", res.ID, "error", err)
	}

	logger.ExitMethod("ReservationService.BookSuite", "reservationId", res.ID)
	return res, bill, nil
}

func (s *reservationService) BookBulk(ctx context.Context, res *domain.Reservation, numRooms int32) (*domain.Reservation, *domain.Bill, error) {
	logger.EnterMethod("ReservationService.BookBulk", "company", res.TravelCompanyName, "rooms", numRooms)

	res.IsTravelCompany = true
	if err := validateReservation(res); err != nil {
		return nil, nil, err
	}
	if numRooms < utils.BulkDiscountMinRooms {
		return nil, nil, domain.ValidationError("bulk bookings require at least %d rooms", utils.BulkDiscountMinRooms)
	}

	count, err := s.rooms.CountAvailableStandard(ctx)
	if err != nil {
		return nil, nil, err
	}
	if count < numRooms {
		return nil, nil, domain.PreconditionError("only %d standard rooms available, %d requested", count, numRooms)
	}

	available, err := s.rooms.ListAvailableStandard(ctx, numRooms)
	if err != nil {
		return nil, nil, err
	}
	// A room may have been taken between the count and the fetch.
	if int32(len(available)) < numRooms {
		return nil, nil, domain.PreconditionError("only %d standard rooms available, %d requested", len(available), numRooms)
	}

	roomIDs := make([]int32, numRooms)
	for i := range roomIDs {
		roomIDs[i] = available[i].ID
	}

	res.Status = domain.ReservationStatusActive
	if res.CreatedBy == "" {
		res.CreatedBy = domain.CreatedByClerk
	}

	// Per-room nightly charge, discounted for the bulk, then taxed.
	nights := utils.Nights(res.CheckInDate, res.CheckOutDate)
	base := utils.NightlyBase(res.NumAdults, nights) * numRooms
	total := utils.WithTax(utils.BulkDiscount(base))

	bill := &domain.Bill{
		TotalAmountCents: total,
		Status:           domain.BillStatusPending,
	}
	if err := s.reservations.CreateBooking(ctx, res, bill, roomIDs); err != nil {
		logger.ExitMethodWithError("ReservationService.BookBulk", err)
		return nil, nil, err
	}

	if err := s.email.SendReservationConfirmation(ctx, res, bill.TotalAmountCents); err != nil {
		logger.Warn("confirmation email not sent", "reservationId", res.ID, "error", err)
	}

	logger.ExitMethod("ReservationService.BookBulk", "reservationId", res.ID, "rooms", numRooms)
	return res, bill, nil
}
