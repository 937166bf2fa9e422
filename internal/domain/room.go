package domain

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "Available"
	RoomStatusOccupied    RoomStatus = "Occupied"
	RoomStatusMaintenance RoomStatus = "Maintenance"
)

type RoomType string

const (
	RoomTypeStandard RoomType = "Standard"
	RoomTypeSuite    RoomType = "Suite"
)

// Room rates are in cents; at least one of the three must be set.
type Room struct {
	ID                int32      `json:"id"`
	RoomNumber        string     `json:"room_number"`
	RoomType          RoomType   `json:"room_type"`
	BedType           string     `json:"bed_type"`
	MaxOccupants      int32      `json:"max_occupants"`
	MaxChildren       int32      `json:"max_children"`
	Status            RoomStatus `json:"status"`
	RatePerNightCents *int32     `json:"rate_per_night_cents,omitempty"`
	RatePerWeekCents  *int32     `json:"rate_per_week_cents,omitempty"`
	RatePerMonthCents *int32     `json:"rate_per_month_cents,omitempty"`
}

func (r *Room) HasRate() bool {
	return r.RatePerNightCents != nil || r.RatePerWeekCents != nil || r.RatePerMonthCents != nil
}
