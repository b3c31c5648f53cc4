package models

import (
	"regexp"
	"time"
)

type BookingStatus string

const (
	StatusBooked      BookingStatus = "BOOKED"
	StatusPaid        BookingStatus = "PAID"
	StatusCanceled    BookingStatus = "CANCELED"
	StatusRescheduled BookingStatus = "RESCHEDULED"
	StatusFree        BookingStatus = "FREE"
)

// seatPattern accepts labels like "1A" or "12B".
var seatPattern = regexp.MustCompile(`^\d{1,2}[A-Z]$`)

func ValidSeatNumber(seat string) bool {
	return seatPattern.MatchString(seat)
}

type Booking struct {
	ID            int64         `json:"id"`
	CustomerID    int64         `json:"customer_id"`
	TripID        int64         `json:"trip_id"`
	SeatNumber    string        `json:"seat_number"`
	Status        BookingStatus `json:"status"`
	LoyaltyPoints int           `json:"loyalty_points"`
	BookingDate   time.Time     `json:"booking_date"`
}

// CalculateLoyaltyPoints awards 5 points to a booking that is BOOKED at the
// moment of calculation and 0 otherwise. The award is computed before any
// payment transition, so a booking that ends the request as PAID keeps the
// 5 points it earned while still BOOKED.
func (b *Booking) CalculateLoyaltyPoints() {
	if b.Status == StatusBooked {
		b.LoyaltyPoints = 5
	} else {
		b.LoyaltyPoints = 0
	}
}

// PromoteToFree applies the 1-in-4 rule against the customer's existing
// booking counts: when the customer has banked more full groups of four
// BOOKED trips than FREE trips already granted, this booking rides free.
// Evaluated at creation time only; independent of the loyalty ledger's
// 100-point threshold.
func (b *Booking) PromoteToFree(bookedCount, freeCount int) bool {
	if bookedCount/4 > freeCount {
		b.Status = StatusFree
		b.LoyaltyPoints = 0
		return true
	}
	return false
}

// CanCancel and CanReschedule share the same source states.
func (b Booking) CanCancel() bool {
	switch b.Status {
	case StatusBooked, StatusPaid, StatusRescheduled:
		return true
	default:
		return false
	}
}

func (b Booking) CanReschedule() bool {
	return b.CanCancel()
}

// ReceiptPrice is the amount shown on receipts: free trips cost nothing.
func (b Booking) ReceiptPrice(tripPrice float64) float64 {
	if b.Status == StatusFree {
		return 0
	}
	return tripPrice
}
