package repositories

import (
	"database/sql"
	"errors"

	intconfig "quicktransit/internal/config"
	"quicktransit/internal/domain"
	"quicktransit/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so the write path can run
// inside the booking transaction.
type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id, customer_id, trip_id, seat_number, status, loyalty_points, booking_date`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.CustomerID, &b.TripID, &b.SeatNumber, &b.Status, &b.LoyaltyPoints, &b.BookingDate)
	return b, err
}

// TakenSeats lists seats held by active bookings on the trip, in insert
// order. CANCELED and RESCHEDULED bookings release their seats.
func (r BookingRepo) TakenSeats(tripID int64) ([]string, error) {
	rows, err := r.db().Query(`
		SELECT seat_number FROM bookings
		WHERE trip_id = ? AND status IN ('BOOKED','PAID','FREE')
		ORDER BY id ASC
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			return out, err
		}
		out = append(out, seat)
	}
	return out, rows.Err()
}

func (r BookingRepo) CountByStatus(customerID int64, status models.BookingStatus) (int, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM bookings WHERE customer_id = ? AND status = ?
	`, customerID, string(status)).Scan(&n)
	return n, err
}

// Insert persists a new booking. A duplicate key on the (trip_id, seat_hold)
// unique index means another request won the seat between our availability
// read and this write; that surfaces as a ConflictError.
func (r BookingRepo) Insert(q DBTX, b models.Booking) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO bookings (customer_id, trip_id, seat_number, status, loyalty_points)
		VALUES (?, ?, ?, ?, ?)
	`, b.CustomerID, b.TripID, b.SeatNumber, string(b.Status), b.LoyaltyPoints)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return 0, domain.ConflictError{Resource: "seat", Msg: "seat " + b.SeatNumber + " is already booked", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepo) UpdateStatus(q DBTX, id int64, status models.BookingStatus) error {
	_, err := q.Exec(`UPDATE bookings SET status = ? WHERE id = ?`, string(status), id)
	return err
}

// Reassign moves a booking to another trip and marks it RESCHEDULED.
func (r BookingRepo) Reassign(id, tripID int64) error {
	_, err := r.db().Exec(`
		UPDATE bookings SET trip_id = ?, status = ? WHERE id = ?
	`, tripID, string(models.StatusRescheduled), id)
	return err
}

func (r BookingRepo) GetByID(id int64) (models.Booking, error) {
	b, err := scanBooking(r.db().QueryRow(`
		SELECT `+bookingColumns+` FROM bookings WHERE id = ? LIMIT 1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, err
	}
	return b, nil
}

// GetOwned fetches a booking only when it belongs to the customer; a miss on
// either condition reads the same as not found.
func (r BookingRepo) GetOwned(id, customerID int64) (models.Booking, error) {
	b, err := scanBooking(r.db().QueryRow(`
		SELECT `+bookingColumns+` FROM bookings WHERE id = ? AND customer_id = ? LIMIT 1
	`, id, customerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, err
	}
	return b, nil
}

func (r BookingRepo) ListByCustomer(customerID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT `+bookingColumns+` FROM bookings
		WHERE customer_id = ?
		ORDER BY booking_date DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepo) ListAll() ([]models.Booking, error) {
	rows, err := r.db().Query(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY booking_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
