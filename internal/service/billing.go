package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/gateway"
	"grandstay-backend/internal/logger"
	"grandstay-backend/internal/repository"
)

type billingService struct {
	bills        repository.BillRepository
	payments     repository.PaymentRepository
	reservations repository.ReservationRepository
	assignments  repository.RoomAssignmentRepository
	svcAssigns   repository.ServiceAssignmentRepository
	gateway      gateway.PaymentGateway
	email        EmailService
}

func NewBillingService(
	bills repository.BillRepository,
	payments repository.PaymentRepository,
	reservations repository.ReservationRepository,
	assignments repository.RoomAssignmentRepository,
	svcAssigns repository.ServiceAssignmentRepository,
	gw gateway.PaymentGateway,
	email EmailService,
) BillingService {
	return &billingService{
		bills:        bills,
		payments:     payments,
		reservations: reservations,
		assignments:  assignments,
		svcAssigns:   svcAssigns,
		gateway:      gw,
		email:        email,
	}
}

func (s *billingService) GetBill(ctx context.Context, reservationID int32) (*domain.Bill, error) {
	return s.bills.GetByReservation(ctx, reservationID)
}

func (s *billingService) outstanding(ctx context.Context, bill *domain.Bill) (int64, error) {
	paid, err := s.payments.SumByBill(ctx, bill.ID)
	if err != nil {
		return 0, err
	}
	return int64(bill.TotalAmountCents) - paid, nil
}

func (s *billingService) CreateCheckoutSession(ctx context.Context, reservationID int32) (*gateway.CheckoutSession, error) {
	logger.EnterMethod("BillingService.CreateCheckoutSession", "reservationId", reservationID)

	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	bill, err := s.bills.GetByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	balance, err := s.outstanding(ctx, bill)
	if err != nil {
		return nil, err
	}
	if balance <= 0 {
		return nil, domain.PreconditionError("bill %d has no outstanding balance", bill.ID)
	}

	description := fmt.Sprintf("GrandStay reservation #%d — %s %s", res.ID, res.FirstName, res.LastName)
	session, err := s.gateway.CreateCheckoutSession(bill.ID, res.ID, description, balance)
	if err != nil {
		logger.ExitMethodWithError("BillingService.CreateCheckoutSession", err)
		return nil, err
	}

	logger.ExitMethod("BillingService.CreateCheckoutSession", "sessionId", session.ID)
	return session, nil
}

func (s *billingService) HandleGatewayNotification(ctx context.Context, payload []byte, signature string) error {
	completed, err := s.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		return domain.ValidationError("%v", err)
	}
	if completed == nil {
		// Not a payment event; acknowledge and move on.
		return nil
	}

	// A redelivered notification finds its session id already recorded and
	// stops here.
	if existing, err := s.payments.GetByExternalRef(ctx, completed.SessionID); err == nil && existing != nil {
		logger.Info("duplicate gateway notification ignored",
			"sessionId", completed.SessionID, "paymentId", existing.ID)
		return nil
	}

	paymentStatus := completed.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "completed"
	}
	payment := &domain.Payment{
		BillID:        completed.BillID,
		AmountCents:   int32(completed.AmountCents),
		PaymentMethod: domain.PaymentMethodCard,
		PaymentStatus: paymentStatus,
		ExternalRef:   completed.SessionID,
		PaymentDate:   time.Now(),
	}
	status, err := s.payments.Record(ctx, payment)
	if err != nil {
		// A concurrent delivery may have won the insert; that is success.
		if errors.Is(err, domain.ErrConflict) {
			logger.Info("gateway notification raced a duplicate", "sessionId", completed.SessionID)
			return nil
		}
		return err
	}

	if res, resErr := s.reservations.GetByID(ctx, completed.ReservationID); resErr == nil {
		if mailErr := s.email.SendPaymentReceipt(ctx, res.CustomerEmail, payment.AmountCents, status); mailErr != nil {
			logger.Warn("payment receipt not sent", "billId", payment.BillID, "error", mailErr)
		}
	}

	logger.Info("gateway payment recorded",
		"billId", payment.BillID, "amountCents", payment.AmountCents, "billStatus", status)
	return nil
}

func (s *billingService) RecordCashPayment(ctx context.Context, reservationID, amountCents int32) (*domain.Payment, domain.BillStatus, error) {
	logger.EnterMethod("BillingService.RecordCashPayment", "reservationId", reservationID, "amountCents", amountCents)

	if amountCents <= 0 {
		return nil, "", domain.ValidationError("payment amount must be positive")
	}

	bill, err := s.bills.GetByReservation(ctx, reservationID)
	if err != nil {
		return nil, "", err
	}

	payment := &domain.Payment{
		BillID:        bill.ID,
		AmountCents:   amountCents,
		PaymentMethod: domain.PaymentMethodCash,
		PaymentStatus: "completed",
		ExternalRef:   "cash-" + uuid.NewString(),
		PaymentDate:   time.Now(),
	}
	status, err := s.payments.Record(ctx, payment)
	if err != nil {
		logger.ExitMethodWithError("BillingService.RecordCashPayment", err)
		return nil, "", err
	}

	if res, resErr := s.reservations.GetByID(ctx, reservationID); resErr == nil {
		if mailErr := s.email.SendPaymentReceipt(ctx, res.CustomerEmail, amountCents, status); mailErr != nil {
			logger.Warn("payment receipt not sent", "billId", bill.ID, "error", mailErr)
		}
	}

	logger.ExitMethod("BillingService.RecordCashPayment", "billId", bill.ID, "billStatus", status)
	return payment, status, nil
}

func (s *billingService) Statement(ctx context.Context, reservationID int32) (*domain.Statement, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	bill, err := s.bills.GetByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	rooms, err := s.assignments.ListDetailsByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	services, err := s.svcAssigns.ListDetailsByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListByBill(ctx, bill.ID)
	if err != nil {
		return nil, err
	}

	var paid int64
	for _, p := range payments {
		paid += int64(p.AmountCents)
	}

	return &domain.Statement{
		ReservationID:     res.ID,
		CustomerName:      res.FirstName + " " + res.LastName,
		CustomerEmail:     res.CustomerEmail,
		CheckInDate:       res.CheckInDate,
		CheckOutDate:      res.CheckOutDate,
		Status:            res.Status,
		IsTravelCompany:   res.IsTravelCompany,
		TravelCompanyName: res.TravelCompanyName,
		Rooms:             rooms,
		Services:          services,
		Payments:          payments,
		BillAmountCents:   bill.TotalAmountCents,
		BillStatus:        bill.Status,
		TotalPaidCents:    paid,
		BalanceCents:      int64(bill.TotalAmountCents) - paid,
		StatementNumber:   fmt.Sprintf("STMT-%d-%s", res.ID, uuid.NewString()),
		GeneratedAt:       time.Now(),
	}, nil
}
