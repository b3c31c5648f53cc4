package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	intconfig "quicktransit/internal/config"
	"quicktransit/internal/domain"
	"quicktransit/internal/domain/models"
)

type TripRepo struct {
	DB *sql.DB
}

func (r TripRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripWithBusQuery = `
	SELECT t.id, t.bus_id, t.origin, t.destination, t.departure_time, t.price, t.active,
	       b.name, b.origin, b.destination, b.departure_time, b.price,
	       b.total_seats, b.seats_per_row, b.is_available
	FROM trips t
	JOIN buses b ON b.id = t.bus_id`

func scanTripWithBus(row interface{ Scan(...any) error }) (models.Trip, error) {
	var t models.Trip
	err := row.Scan(
		&t.ID, &t.BusID, &t.Origin, &t.Destination, &t.DepartureTime, &t.Price, &t.Active,
		&t.Bus.Name, &t.Bus.Origin, &t.Bus.Destination, &t.Bus.DepartureTime, &t.Bus.Price,
		&t.Bus.TotalSeats, &t.Bus.SeatsPerRow, &t.Bus.IsAvailable,
	)
	t.Bus.ID = t.BusID
	return t, err
}

// GetWithBus loads a trip plus the bus it runs on; availability and seat
// layout both need the bus row.
func (r TripRepo) GetWithBus(id int64) (models.Trip, error) {
	t, err := scanTripWithBus(r.db().QueryRow(tripWithBusQuery+` WHERE t.id = ? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trip{}, domain.NotFoundError{Resource: "trip", Err: err}
		}
		return models.Trip{}, err
	}
	return t, nil
}

// ListUpcoming returns trips on available buses departing after now, the set
// shown on the customer dashboard and offered for reschedules.
func (r TripRepo) ListUpcoming(now time.Time) ([]models.Trip, error) {
	rows, err := r.db().Query(tripWithBusQuery+`
		WHERE b.is_available = 1 AND t.departure_time > ?
		ORDER BY t.departure_time ASC`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTripWithBus(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepo) ListAll() ([]models.Trip, error) {
	rows, err := r.db().Query(tripWithBusQuery + ` ORDER BY t.departure_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTripWithBus(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepo) Create(t models.Trip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trips (bus_id, departure_time, origin, destination, price, active)
		VALUES (?, ?, ?, ?, ?, ?)
	`, t.BusID, t.DepartureTime, strings.TrimSpace(t.Origin), strings.TrimSpace(t.Destination), t.Price, t.Active)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripRepo) Update(t models.Trip) error {
	res, err := r.db().Exec(`
		UPDATE trips
		SET bus_id = ?, departure_time = ?, origin = ?, destination = ?, price = ?, active = ?
		WHERE id = ?
	`, t.BusID, t.DepartureTime, strings.TrimSpace(t.Origin), strings.TrimSpace(t.Destination), t.Price, t.Active, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetWithBus(t.ID); err != nil {
			return err
		}
	}
	return nil
}
