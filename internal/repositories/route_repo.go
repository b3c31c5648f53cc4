package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "quicktransit/internal/config"
	"quicktransit/internal/domain"
	"quicktransit/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type RouteRepo struct {
	DB *sql.DB
}

func (r RouteRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetPrice looks up the route override for an (origin, destination) pair.
func (r RouteRepo) GetPrice(originID, destinationID int64) (float64, error) {
	var price float64
	err := r.db().QueryRow(`
		SELECT price FROM route_prices
		WHERE origin_id = ? AND destination_id = ?
		LIMIT 1
	`, originID, destinationID).Scan(&price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.NotFoundError{Resource: "price", Err: err}
		}
		return 0, err
	}
	return price, nil
}

func (r RouteRepo) ListPrices() ([]models.RoutePrice, error) {
	rows, err := r.db().Query(`
		SELECT id, origin_id, destination_id, price FROM route_prices ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.RoutePrice{}
	for rows.Next() {
		var rp models.RoutePrice
		if err := rows.Scan(&rp.ID, &rp.OriginID, &rp.DestinationID, &rp.Price); err != nil {
			return out, err
		}
		out = append(out, rp)
	}
	return out, rows.Err()
}

// UpsertPrice creates or updates the single price row for a pair.
func (r RouteRepo) UpsertPrice(rp models.RoutePrice) error {
	_, err := r.db().Exec(`
		INSERT INTO route_prices (origin_id, destination_id, price)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE price = VALUES(price)
	`, rp.OriginID, rp.DestinationID, rp.Price)
	return err
}

func (r RouteRepo) ListLocations() ([]models.Location, error) {
	rows, err := r.db().Query(`SELECT id, name FROM locations ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Location{}
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.ID, &loc.Name); err != nil {
			return out, err
		}
		out = append(out, loc)
	}
	return out, rows.Err()
}

func (r RouteRepo) CreateLocation(name string) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO locations (name) VALUES (?)`, strings.TrimSpace(name))
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return 0, domain.ConflictError{Resource: "location", Msg: "location already exists", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}
