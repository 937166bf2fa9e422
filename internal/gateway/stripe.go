package gateway

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"

	"grandstay-backend/internal/logger"
)

// CheckoutSession is the subset of the gateway session the billing service
// needs: the dedupe reference, the hosted payment URL and the amount.
type CheckoutSession struct {
	ID          string
	URL         string
	AmountCents int64
}

// CompletedPayment is a verified "checkout completed" notification.
// PaymentStatus is the status the gateway reported for the session.
type CompletedPayment struct {
	SessionID     string
	BillID        int32
	ReservationID int32
	AmountCents   int64
	PaymentStatus string
}

// PaymentGateway abstracts the card processor so the billing service and its
// tests never touch the network.
type PaymentGateway interface {
	CreateCheckoutSession(billID, reservationID int32, description string, amountCents int64) (*CheckoutSession, error)
	VerifyWebhook(payload []byte, signature string) (*CompletedPayment, error)
}

type stripeGateway struct {
	webhookSecret string
	successURL    string
	cancelURL     string
}

func NewStripeGateway(apiKey, webhookSecret, successURL, cancelURL string) PaymentGateway {
	stripe.Key = apiKey
	return &stripeGateway{
		webhookSecret: webhookSecret,
		successURL:    successURL,
		cancelURL:     cancelURL,
	}
}

func (g *stripeGateway) CreateCheckoutSession(billID, reservationID int32, description string, amountCents int64) (*CheckoutSession, error) {
	logger.EnterMethod("StripeGateway.CreateCheckoutSession", "billId", billID, "amountCents", amountCents)

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
					UnitAmount: stripe.Int64(amountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(g.successURL),
		CancelURL:  stripe.String(g.cancelURL),
	}
	params.AddMetadata("bill_id", strconv.Itoa(int(billID)))
	params.AddMetadata("reservation_id", strconv.Itoa(int(reservationID)))

	s, err := session.New(params)
	if err != nil {
		logger.ExitMethodWithError("StripeGateway.CreateCheckoutSession", err)
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}

	logger.ExitMethod("StripeGateway.CreateCheckoutSession", "sessionId", s.ID)
	return &CheckoutSession{ID: s.ID, URL: s.URL, AmountCents: amountCents}, nil
}

func (g *stripeGateway) VerifyWebhook(payload []byte, signature string) (*CompletedPayment, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("verifying webhook signature: %w", err)
	}

	if event.Type != "checkout.session.completed" {
		// Other event types are acknowledged but carry no payment.
		return nil, nil
	}

	var s stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
		return nil, fmt.Errorf("decoding checkout session: %w", err)
	}

	billID, err := strconv.Atoi(s.Metadata["bill_id"])
	if err != nil {
		return nil, fmt.Errorf("checkout session %s missing bill_id metadata", s.ID)
	}
	reservationID, _ := strconv.Atoi(s.Metadata["reservation_id"])

	return &CompletedPayment{
		SessionID:     s.ID,
		BillID:        int32(billID),
		ReservationID: int32(reservationID),
		AmountCents:   s.AmountTotal,
		PaymentStatus: string(s.PaymentStatus),
	}, nil
}
