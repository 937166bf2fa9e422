package domain

import "time"

type BillStatus string

const (
	BillStatusPending BillStatus = "Payment Pending"
	BillStatusPartial BillStatus = "Partial Payment"
	BillStatusPaid    BillStatus = "Payment Paid"
)

// Bill is the single financial record for a reservation (1:1, created with
// the reservation). TotalAmountCents includes tax, discounts and service
// surcharges; it only changes through AddCharge.
type Bill struct {
	ID               int32      `json:"id"`
	ReservationID    int32      `json:"reservation_id"`
	TotalAmountCents int32      `json:"total_amount_cents"`
	Status           BillStatus `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// StatusFor applies the three-way reconciliation rule.
func (b *Bill) StatusFor(paidCents int64) BillStatus {
	switch {
	case paidCents <= 0:
		return BillStatusPending
	case paidCents >= int64(b.TotalAmountCents):
		return BillStatusPaid
	default:
		return BillStatusPartial
	}
}

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

// Payment is an append-only ledger entry against a bill. ExternalRef carries
// the gateway checkout-session id (or a generated reference for cash) and is
// unique, so replayed webhook deliveries cannot double-count.
type Payment struct {
	ID            int32         `json:"id"`
	BillID        int32         `json:"bill_id"`
	AmountCents   int32         `json:"amount_cents"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus string        `json:"payment_status"`
	ExternalRef   string        `json:"external_ref"`
	PaymentDate   time.Time     `json:"payment_date"`
}
