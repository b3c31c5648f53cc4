package models

type Location struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RoutePrice overrides pricing per (origin, destination) pair, independent of
// any specific trip or bus. Pairs are unique and directional.
type RoutePrice struct {
	ID            int64   `json:"id"`
	OriginID      int64   `json:"origin_id"`
	DestinationID int64   `json:"destination_id"`
	Price         float64 `json:"price"`
}
