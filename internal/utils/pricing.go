package utils

import (
	"fmt"
	"time"

	"grandstay-backend/internal/domain"
)

// Flat quote rate: $200 per couple-unit per night, in cents.
const BaseRatePerCoupleCents int32 = 20000

const (
	taxRatePercent      = 10
	bulkDiscountPercent = 15

	// Minimum room count for a travel-company booking to qualify for the
	// bulk discount.
	BulkDiscountMinRooms = 3
)

// BookingPeriod selects the rate used for suite bookings.
type BookingPeriod string

const (
	BookingPeriodWeekly  BookingPeriod = "weekly"
	BookingPeriodMonthly BookingPeriod = "monthly"
)

// Nights returns the charged night count for a stay: the ceiling of the
// elapsed duration in days, never less than 1 even for zero-length stays.
func Nights(checkIn, checkOut time.Time) int32 {
	d := checkOut.Sub(checkIn)
	nights := int32(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return nights
}

// CoupleUnits is ceil(numAdults/2); a single adult is still one unit.
func CoupleUnits(numAdults int32) int32 {
	units := (numAdults + 1) / 2
	if units < 1 {
		units = 1
	}
	return units
}

// NightlyBase computes the flat room charge before tax:
// BaseRate * ceil(adults/2) * max(nights, 1).
func NightlyBase(numAdults, nights int32) int32 {
	if nights < 1 {
		nights = 1
	}
	return BaseRatePerCoupleCents * CoupleUnits(numAdults) * nights
}

// PeriodCount returns the number of whole billing periods covered by the
// stay, rounded up. Weekly periods are 7 days, monthly 30.
func PeriodCount(checkIn, checkOut time.Time, period BookingPeriod) (int32, error) {
	var unit time.Duration
	switch period {
	case BookingPeriodWeekly:
		unit = 7 * 24 * time.Hour
	case BookingPeriodMonthly:
		unit = 30 * 24 * time.Hour
	default:
		return 0, fmt.Errorf("unknown booking period %q", period)
	}

	d := checkOut.Sub(checkIn)
	count := int32(d / unit)
	if d%unit > 0 {
		count++
	}
	if count < 1 {
		count = 1
	}
	return count, nil
}

// SuitePeriodCharge is rate * periodCount, before tax.
func SuitePeriodCharge(rateCents, periodCount int32) int32 {
	return rateCents * periodCount
}

// WithTax adds the 10% tax, rounding to the nearest cent.
func WithTax(amountCents int32) int32 {
	return int32((int64(amountCents)*(100+taxRatePercent) + 50) / 100)
}

// BulkDiscount applies the travel-company 15% discount. Callers apply it
// before tax, only when the booking covers at least BulkDiscountMinRooms
// rooms of a travel-company reservation.
func BulkDiscount(amountCents int32) int32 {
	return int32((int64(amountCents)*(100-bulkDiscountPercent) + 50) / 100)
}

// ServiceCharge snapshots the per-person service charge for a reservation's
// adult count, before tax.
func ServiceCharge(numAdults, chargePerPersonCents int32) int32 {
	return numAdults * chargePerPersonCents
}

// SuiteRateFor picks the suite's rate for the requested period.
func SuiteRateFor(room *domain.Room, period BookingPeriod) (int32, error) {
	switch period {
	case BookingPeriodWeekly:
		if room.RatePerWeekCents == nil {
			return 0, fmt.Errorf("weekly rate not set for room %s", room.RoomNumber)
		}
		return *room.RatePerWeekCents, nil
	case BookingPeriodMonthly:
		if room.RatePerMonthCents == nil {
			return 0, fmt.Errorf("monthly rate not set for room %s", room.RoomNumber)
		}
		return *room.RatePerMonthCents, nil
	default:
		return 0, fmt.Errorf("unknown booking period %q", period)
	}
}
