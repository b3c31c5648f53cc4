package repositories

import (
	"database/sql"
	"errors"

	intconfig "quicktransit/internal/config"
	"quicktransit/internal/domain/models"
)

type LoyaltyRepo struct {
	DB *sql.DB
}

func (r LoyaltyRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetOrCreate loads the customer's ledger, creating an empty one on first
// touch. Ledgers come into existence lazily with the first booking.
func (r LoyaltyRepo) GetOrCreate(customerID int64) (models.Loyalty, error) {
	l, err := r.get(customerID)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Loyalty{}, err
	}

	res, err := r.db().Exec(`
		INSERT INTO loyalty (customer_id, points, free_trip_eligible) VALUES (?, 0, 0)
	`, customerID)
	if err != nil {
		// lost a race with another request; re-read
		if l, rerr := r.get(customerID); rerr == nil {
			return l, nil
		}
		return models.Loyalty{}, err
	}
	id, _ := res.LastInsertId()
	return models.Loyalty{ID: id, CustomerID: customerID}, nil
}

func (r LoyaltyRepo) get(customerID int64) (models.Loyalty, error) {
	var l models.Loyalty
	err := r.db().QueryRow(`
		SELECT id, customer_id, points, free_trip_eligible
		FROM loyalty WHERE customer_id = ? LIMIT 1
	`, customerID).Scan(&l.ID, &l.CustomerID, &l.Points, &l.FreeTripEligible)
	return l, err
}

func (r LoyaltyRepo) Save(l models.Loyalty) error {
	_, err := r.db().Exec(`
		UPDATE loyalty SET points = ?, free_trip_eligible = ? WHERE customer_id = ?
	`, l.Points, l.FreeTripEligible, l.CustomerID)
	return err
}
