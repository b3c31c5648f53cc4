package repositories

import (
	"database/sql"
	"time"

	intconfig "quicktransit/internal/config"
	"quicktransit/internal/domain/models"
)

type SaleRepo struct {
	DB *sql.DB
}

func (r SaleRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SaleRepo) Insert(q DBTX, s models.TicketSale) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO ticket_sales (bus_id, trip_id, amount, reference)
		VALUES (?, ?, ?, ?)
	`, s.BusID, s.TripID, s.Amount, s.Reference)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RevenueSince aggregates sales from the period boundary onward, grouped the
// way the admin dashboard presents profit: per bus and route, biggest first.
func (r SaleRepo) RevenueSince(start time.Time) ([]models.RevenueRow, error) {
	return r.revenue(`WHERE s.sold_at >= ?`, start)
}

// RevenueBetween serves the ad-hoc date-range report, independent of the
// period buckets. The end bound is exclusive of the following day.
func (r SaleRepo) RevenueBetween(start, end time.Time) ([]models.RevenueRow, error) {
	return r.revenue(`WHERE s.sold_at >= ? AND s.sold_at < ?`, start, end.AddDate(0, 0, 1))
}

func (r SaleRepo) revenue(where string, args ...any) ([]models.RevenueRow, error) {
	rows, err := r.db().Query(`
		SELECT b.name, t.origin, t.destination, COALESCE(SUM(s.amount), 0) AS total
		FROM ticket_sales s
		JOIN buses b ON b.id = s.bus_id
		JOIN trips t ON t.id = s.trip_id
		`+where+`
		GROUP BY b.name, t.origin, t.destination
		ORDER BY total DESC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.RevenueRow{}
	for rows.Next() {
		var rec models.RevenueRow
		if err := rows.Scan(&rec.BusName, &rec.Origin, &rec.Destination, &rec.Total); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// TotalSince sums all sales from a boundary, for the grand totals row.
func (r SaleRepo) TotalSince(start time.Time) (float64, error) {
	var total float64
	err := r.db().QueryRow(`
		SELECT COALESCE(SUM(amount), 0) FROM ticket_sales WHERE sold_at >= ?
	`, start).Scan(&total)
	return total, err
}

// TotalOn sums one calendar day, for the trailing daily breakdown.
func (r SaleRepo) TotalOn(day time.Time) (float64, error) {
	var total float64
	err := r.db().QueryRow(`
		SELECT COALESCE(SUM(amount), 0) FROM ticket_sales
		WHERE sold_at >= ? AND sold_at < ?
	`, day, day.AddDate(0, 0, 1)).Scan(&total)
	return total, err
}
