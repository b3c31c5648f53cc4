package services

import (
	"database/sql"

	intconfig "quicktransit/internal/config"
	"quicktransit/internal/domain/models"
	"quicktransit/internal/repositories"
)

// SeatMapService derives bookable seats for a trip from the bus layout and
// the bookings currently holding seats.
type SeatMapService struct {
	TripRepo    repositories.TripRepo
	BookingRepo repositories.BookingRepo
	DB          *sql.DB
}

func (s SeatMapService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s SeatMapService) trips() repositories.TripRepo {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepo{DB: s.db()}
}

func (s SeatMapService) bookings() repositories.BookingRepo {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepo{DB: s.db()}
}

// AvailableFrom subtracts taken seats from the generated labels, preserving
// generation order.
func AvailableFrom(labels, taken []string) []string {
	held := make(map[string]struct{}, len(taken))
	for _, seat := range taken {
		held[seat] = struct{}{}
	}
	out := make([]string, 0, len(labels))
	for _, seat := range labels {
		if _, ok := held[seat]; !ok {
			out = append(out, seat)
		}
	}
	return out
}

// AvailableSeats returns the trip and its currently bookable seat labels.
func (s SeatMapService) AvailableSeats(tripID int64) (models.Trip, []string, error) {
	trip, err := s.trips().GetWithBus(tripID)
	if err != nil {
		return models.Trip{}, nil, err
	}
	taken, err := s.bookings().TakenSeats(tripID)
	if err != nil {
		return models.Trip{}, nil, err
	}
	return trip, AvailableFrom(trip.Bus.SeatLabels(), taken), nil
}
