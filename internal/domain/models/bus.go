package models

import (
	"strconv"
	"time"
)

type Bus struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departure_time"`
	Price         float64   `json:"price"`
	TotalSeats    int       `json:"total_seats"`
	SeatsPerRow   int       `json:"seats_per_row"`
	IsAvailable   bool      `json:"is_available"`
}

// SeatLabels enumerates the bus's seat labels in row-major order: rows
// 1..total/perRow, columns from the first seatsPerRow letters of the
// alphabet. A remainder of total_seats not divisible by seats_per_row is
// silently dropped, matching how the booking page has always derived the
// layout.
func SeatLabels(totalSeats, seatsPerRow int) []string {
	if totalSeats <= 0 || seatsPerRow <= 0 {
		return []string{}
	}
	if seatsPerRow > 26 {
		seatsPerRow = 26
	}
	rows := totalSeats / seatsPerRow

	out := make([]string, 0, rows*seatsPerRow)
	for r := 1; r <= rows; r++ {
		for c := 0; c < seatsPerRow; c++ {
			out = append(out, strconv.Itoa(r)+string(rune('A'+c)))
		}
	}
	return out
}

func (b Bus) SeatLabels() []string {
	return SeatLabels(b.TotalSeats, b.SeatsPerRow)
}

type InventoryStatus string

const (
	InventoryNew         InventoryStatus = "NEW"
	InventoryRepaired    InventoryStatus = "REPAIRED"
	InventoryNotServiced InventoryStatus = "NOT_SERVICED"
)

// BusInventory tracks the maintenance state of a bus, one row per bus.
type BusInventory struct {
	ID           int64           `json:"id"`
	BusID        int64           `json:"bus_id"`
	Status       InventoryStatus `json:"status"`
	PurchaseDate string          `json:"purchase_date"`
}
