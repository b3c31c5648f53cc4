package models

import "time"

type Trip struct {
	ID            int64     `json:"id"`
	BusID         int64     `json:"bus_id"`
	DepartureTime time.Time `json:"departure_time"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	Price         float64   `json:"price"`
	Active        bool      `json:"active"`

	Bus Bus `json:"bus"`
}

// IsAvailable reports whether the trip can still be booked: bus in service,
// trip active, departure in the future.
func (t Trip) IsAvailable(now time.Time) bool {
	return t.Bus.IsAvailable && t.Active && t.DepartureTime.After(now)
}

// Describe renders the trip the way receipts and logs identify it.
func (t Trip) Describe() string {
	return t.Origin + " to " + t.Destination + " at " + t.DepartureTime.Format("2006-01-02 15:04")
}
