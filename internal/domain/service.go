package domain

import "time"

// Service is a hotel add-on (spa, airport pickup, breakfast) billed per person.
type Service struct {
	ID                   int32  `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	ChargePerPersonCents int32  `json:"charge_per_person_cents"`
	Active               bool   `json:"active"`
}

// ServiceAssignment snapshots the charge at assignment time; it is never
// recomputed when the catalog price changes later.
type ServiceAssignment struct {
	ID               int32     `json:"id"`
	ReservationID    int32     `json:"reservation_id"`
	ServiceID        int32     `json:"service_id"`
	TotalChargeCents int32     `json:"total_charge_cents"`
	AssignDate       time.Time `json:"assign_date"`
}

type ServiceAssignmentDetail struct {
	ServiceAssignment
	ServiceName          string `json:"service_name"`
	ChargePerPersonCents int32  `json:"charge_per_person_cents"`
}
