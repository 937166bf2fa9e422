package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusActive     ReservationStatus = "Active"
	ReservationStatusInprogress ReservationStatus = "Inprogress"
	ReservationStatusCompleted  ReservationStatus = "Completed"
	ReservationStatusCancelled  ReservationStatus = "Cancelled"
	ReservationStatusNoShow     ReservationStatus = "No-show"
)

type CreatedBy string

const (
	CreatedByCustomer CreatedBy = "Customer"
	CreatedByClerk    CreatedBy = "Clerk"
)

type Reservation struct {
	ID                int32             `json:"id"`
	CustomerEmail     string            `json:"customer_email"`
	FirstName         string            `json:"first_name"`
	LastName          string            `json:"last_name"`
	NumAdults         int32             `json:"num_adults"`
	NumChildren       int32             `json:"num_children"`
	CheckInDate       time.Time         `json:"check_in_date"`
	CheckOutDate      time.Time         `json:"check_out_date"`
	Status            ReservationStatus `json:"status"`
	CreatedBy         CreatedBy         `json:"created_by"`
	IsTravelCompany   bool              `json:"is_travel_company"`
	TravelCompanyName string            `json:"travel_company_name,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// RoomAssignment links a reservation to a physical room. Assignments are
// never deleted; check-in/check-out times stay for the checkout statement.
type RoomAssignment struct {
	ID            int32      `json:"id"`
	ReservationID int32      `json:"reservation_id"`
	RoomID        int32      `json:"room_id"`
	AssignedDate  time.Time  `json:"assigned_date"`
	CheckInTime   *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime  *time.Time `json:"check_out_time,omitempty"`
}

// RoomAssignmentDetail is the statement read-model row joining the room.
type RoomAssignmentDetail struct {
	RoomAssignment
	RoomNumber        string   `json:"room_number"`
	RoomType          RoomType `json:"room_type"`
	BedType           string   `json:"bed_type"`
	RatePerNightCents *int32   `json:"rate_per_night_cents,omitempty"`
}
