package domain

import "time"

// FinancialReport aggregates revenue and payment positions across all bills.
type FinancialReport struct {
	TotalRevenueCents      int64 `json:"total_revenue_cents"`
	RoomRevenueCents       int64 `json:"room_revenue_cents"`
	ServiceRevenueCents    int64 `json:"service_revenue_cents"`
	PendingPaymentsCents   int64 `json:"pending_payments_cents"`
	CompletedPaymentsCents int64 `json:"completed_payments_cents"`
	AverageBillCents       int64 `json:"average_bill_cents"`
}

// RoomStatusReport is the point-in-time occupancy snapshot.
type RoomStatusReport struct {
	TotalRooms       int32   `json:"total_rooms"`
	AvailableRooms   int32   `json:"available_rooms"`
	OccupiedRooms    int32   `json:"occupied_rooms"`
	MaintenanceRooms int32   `json:"maintenance_rooms"`
	UpcomingBookings int32   `json:"upcoming_bookings"`
	OccupancyRate    float64 `json:"occupancy_rate"`
}

// OccupancyDay is one row of the daily occupancy series.
type OccupancyDay struct {
	Date          string  `json:"date"`
	TotalRooms    int32   `json:"total_rooms"`
	OccupiedRooms int32   `json:"occupied_rooms"`
	OccupancyRate float64 `json:"occupancy_rate"`
	RevenueCents  int64   `json:"revenue_cents"`
}

// Statement is the checkout read-model: everything a guest sees on the
// printed statement, including the computed balance.
type Statement struct {
	ReservationID     int32                     `json:"reservation_id"`
	CustomerName      string                    `json:"customer_name"`
	CustomerEmail     string                    `json:"customer_email"`
	CheckInDate       time.Time                 `json:"check_in_date"`
	CheckOutDate      time.Time                 `json:"check_out_date"`
	Status            ReservationStatus         `json:"status"`
	IsTravelCompany   bool                      `json:"is_travel_company"`
	TravelCompanyName string                    `json:"travel_company_name,omitempty"`
	Rooms             []RoomAssignmentDetail    `json:"rooms"`
	Services          []ServiceAssignmentDetail `json:"services"`
	Payments          []Payment                 `json:"payments"`
	BillAmountCents   int32                     `json:"bill_amount_cents"`
	BillStatus        BillStatus                `json:"bill_status"`
	TotalPaidCents    int64                     `json:"total_paid_cents"`
	BalanceCents      int64                     `json:"balance_cents"`
	StatementNumber   string                    `json:"statement_number"`
	GeneratedAt       time.Time                 `json:"generated_at"`
}
