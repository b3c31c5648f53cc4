package repositories

import (
	"testing"
	"time"

	"quicktransit/internal/domain"
	"quicktransit/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestInsertMapsDuplicateSeatToConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// Error 1062 from the (trip_id, seat_hold) unique index means another
	// request won the seat after our availability read.
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '7-1A'"})

	repo := BookingRepo{DB: db}
	_, err = repo.Insert(db, models.Booking{
		CustomerID: 5, TripID: 7, SeatNumber: "1A", Status: models.StatusBooked, LoyaltyPoints: 5,
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestInsertPassesOtherErrorsThrough(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(&mysql.MySQLError{Number: 1146, Message: "Table 'bookings' doesn't exist"})

	repo := BookingRepo{DB: db}
	_, err = repo.Insert(db, models.Booking{CustomerID: 5, TripID: 7, SeatNumber: "1A", Status: models.StatusBooked})
	if domain.IsConflict(err) {
		t.Fatal("non-duplicate errors must not read as seat conflicts")
	}
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestGetOwnedMissReadsAsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").WithArgs(int64(11), int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := BookingRepo{DB: db}
	if _, err := repo.GetOwned(11, 99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for another customer's booking, got %v", err)
	}
}

func TestTakenSeatsFiltersInactiveStatuses(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`status IN \('BOOKED','PAID','FREE'\)`).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"seat_number"}).AddRow("1A").AddRow("2B"))

	repo := BookingRepo{DB: db}
	seats, err := repo.TakenSeats(7)
	if err != nil {
		t.Fatalf("TakenSeats returned error: %v", err)
	}
	if len(seats) != 2 || seats[0] != "1A" || seats[1] != "2B" {
		t.Fatalf("unexpected seats: %v", seats)
	}
}

func TestListByCustomerNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("ORDER BY booking_date DESC").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_id", "trip_id", "seat_number", "status", "loyalty_points", "booking_date",
		}).AddRow(12, 5, 7, "2B", "BOOKED", 5, now).
			AddRow(11, 5, 7, "1A", "PAID", 5, now.Add(-time.Hour)))

	repo := BookingRepo{DB: db}
	bookings, err := repo.ListByCustomer(5)
	if err != nil {
		t.Fatalf("ListByCustomer returned error: %v", err)
	}
	if len(bookings) != 2 || bookings[0].ID != 12 {
		t.Fatalf("unexpected bookings: %+v", bookings)
	}
}
