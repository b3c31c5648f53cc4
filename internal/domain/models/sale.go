package models

import "time"

// TicketSale is the revenue record emitted once per successfully paid
// booking. Reporting reads these rows; nothing else does.
type TicketSale struct {
	ID        int64     `json:"id"`
	BusID     int64     `json:"bus_id"`
	TripID    int64     `json:"trip_id"`
	Amount    float64   `json:"amount"`
	Reference string    `json:"reference"`
	SoldAt    time.Time `json:"sold_at"`
}

// RevenueRow is one aggregated line of a profit report.
type RevenueRow struct {
	BusName     string  `json:"bus"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Total       float64 `json:"total"`
}

// DailyRevenue is one day of the trailing revenue breakdown.
type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}
