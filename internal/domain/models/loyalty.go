package models

// Loyalty is the per-customer point ledger. Crossing 100 points converts 100
// of them into a free-trip eligibility flag.
//
// Note: this ledger is one of two free-trip mechanisms. Booking creation uses
// its own BOOKED/FREE counting rule (see Booking.PromoteToFree) and does not
// consult the ledger; the two are intentionally kept separate.
type Loyalty struct {
	ID               int64 `json:"id"`
	CustomerID       int64 `json:"customer_id"`
	Points           int   `json:"points"`
	FreeTripEligible bool  `json:"free_trip_eligible"`
}

// ApplyPoints adds to the balance and performs a single threshold check:
// a balance at or above 100 sets eligibility and deducts 100. The check runs
// once per call, so two crossings in one call still convert only one.
func (l *Loyalty) ApplyPoints(amount int) {
	l.Points += amount
	if l.Points >= 100 {
		l.FreeTripEligible = true
		l.Points -= 100
	}
}

// RedeemFreeTrip consumes the eligibility flag for the next booking.
func (l *Loyalty) RedeemFreeTrip() bool {
	if !l.FreeTripEligible {
		return false
	}
	l.FreeTripEligible = false
	return true
}
