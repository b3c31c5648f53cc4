package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "quicktransit/internal/config"
	"quicktransit/internal/domain"
	"quicktransit/internal/domain/models"
)

type BusRepo struct {
	DB *sql.DB
}

func (r BusRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const busColumns = `id, name, origin, destination, departure_time, price, total_seats, seats_per_row, is_available`

func scanBus(row interface{ Scan(...any) error }) (models.Bus, error) {
	var b models.Bus
	err := row.Scan(&b.ID, &b.Name, &b.Origin, &b.Destination, &b.DepartureTime,
		&b.Price, &b.TotalSeats, &b.SeatsPerRow, &b.IsAvailable)
	return b, err
}

func (r BusRepo) List() ([]models.Bus, error) {
	rows, err := r.db().Query(`SELECT ` + busColumns + ` FROM buses ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Bus{}
	for rows.Next() {
		b, err := scanBus(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BusRepo) GetByID(id int64) (models.Bus, error) {
	b, err := scanBus(r.db().QueryRow(`SELECT `+busColumns+` FROM buses WHERE id = ? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bus{}, domain.NotFoundError{Resource: "bus", Err: err}
		}
		return models.Bus{}, err
	}
	return b, nil
}

func (r BusRepo) Create(b models.Bus) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO buses (name, origin, destination, departure_time, price, total_seats, seats_per_row, is_available)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, strings.TrimSpace(b.Name), strings.TrimSpace(b.Origin), strings.TrimSpace(b.Destination),
		b.DepartureTime, b.Price, b.TotalSeats, b.SeatsPerRow, b.IsAvailable)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BusRepo) Update(b models.Bus) error {
	res, err := r.db().Exec(`
		UPDATE buses
		SET name = ?, origin = ?, destination = ?, departure_time = ?, price = ?,
		    total_seats = ?, seats_per_row = ?, is_available = ?
		WHERE id = ?
	`, strings.TrimSpace(b.Name), strings.TrimSpace(b.Origin), strings.TrimSpace(b.Destination),
		b.DepartureTime, b.Price, b.TotalSeats, b.SeatsPerRow, b.IsAvailable, b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(b.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r BusRepo) ListInventory() ([]models.BusInventory, error) {
	rows, err := r.db().Query(`
		SELECT id, bus_id, status, purchase_date FROM bus_inventory ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BusInventory{}
	for rows.Next() {
		var inv models.BusInventory
		if err := rows.Scan(&inv.ID, &inv.BusID, &inv.Status, &inv.PurchaseDate); err != nil {
			return out, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// UpsertInventory keeps one maintenance row per bus.
func (r BusRepo) UpsertInventory(inv models.BusInventory) error {
	_, err := r.db().Exec(`
		INSERT INTO bus_inventory (bus_id, status, purchase_date)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE status = VALUES(status), purchase_date = VALUES(purchase_date)
	`, inv.BusID, string(inv.Status), inv.PurchaseDate)
	return err
}
