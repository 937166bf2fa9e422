package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/logger"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func centsToDollars(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func (s *emailService) send(m *gomail.Message) error {
	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendReservationConfirmation(ctx context.Context, res *domain.Reservation, totalCents int32) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", res.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Reservation confirmed — %s to %s",
		res.CheckInDate.Format("Jan 2, 2006"), res.CheckOutDate.Format("Jan 2, 2006")))

	body := fmt.Sprintf("Hello %s %s,\n\nYour reservation is confirmed.\n\nCheck-in: %s\nCheck-out: %s\nGuests: %d adults, %d children\nTotal (incl. tax): %s\n\nWe look forward to your stay.\nThe GrandStay Team",
		res.FirstName, res.LastName,
		res.CheckInDate.Format("Monday, Jan 2, 2006"),
		res.CheckOutDate.Format("Monday, Jan 2, 2006"),
		res.NumAdults, res.NumChildren, centsToDollars(int64(totalCents)))
	m.SetBody("text/plain", body)

	if err := s.send(m); err != nil {
		logger.Error("confirmation email failed", "email", res.CustomerEmail, "error", err)
		return err
	}
	return nil
}

func (s *emailService) SendPaymentReceipt(ctx context.Context, email string, amountCents int32, status domain.BillStatus) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Payment received")

	body := fmt.Sprintf("Hello,\n\nWe received your payment of %s.\nYour bill is now: %s.\n\nThank you,\nThe GrandStay Team",
		centsToDollars(int64(amountCents)), status)
	m.SetBody("text/plain", body)

	return s.send(m)
}

func (s *emailService) SendPaymentReminder(ctx context.Context, email string, outstandingCents int64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Payment reminder")

	body := fmt.Sprintf("Hello,\n\nThis is a friendly reminder that your bill has an outstanding balance of %s.\nPlease settle it at the front desk or through your payment link.\n\nThank you,\nThe GrandStay Team",
		centsToDollars(outstandingCents))
	m.SetBody("text/plain", body)

	return s.send(m)
}
