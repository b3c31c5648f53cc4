package services

import (
	"slices"
	"testing"

	"quicktransit/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAvailableFrom(t *testing.T) {
	labels := []string{"1A", "1B", "2A", "2B"}

	got := AvailableFrom(labels, []string{"1B", "2A"})
	if !slices.Equal(got, []string{"1A", "2B"}) {
		t.Fatalf("AvailableFrom = %v, want [1A 2B]", got)
	}

	// No holds leaves the full layout, in generation order.
	if got := AvailableFrom(labels, nil); !slices.Equal(got, labels) {
		t.Fatalf("AvailableFrom with no holds = %v", got)
	}

	// Holds not in the layout are ignored rather than invented.
	if got := AvailableFrom(labels, []string{"9Z"}); !slices.Equal(got, labels) {
		t.Fatalf("AvailableFrom with stray hold = %v", got)
	}

	if got := AvailableFrom(labels, labels); len(got) != 0 {
		t.Fatalf("fully held bus still shows %v", got)
	}
}

func TestAvailableSeatsForTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM trips t").WithArgs(int64(7)).
		WillReturnRows(tripRow(7, 1200))
	mock.ExpectQuery("SELECT seat_number FROM bookings").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"seat_number"}).AddRow("1A").AddRow("1C"))

	svc := SeatMapService{DB: db}
	trip, available, err := svc.AvailableSeats(7)
	if err != nil {
		t.Fatalf("AvailableSeats returned error: %v", err)
	}
	if trip.ID != 7 {
		t.Fatalf("trip.ID = %d, want 7", trip.ID)
	}
	if len(available) != 38 {
		t.Fatalf("expected 38 available seats on a 40-seat bus with 2 holds, got %d", len(available))
	}
	if slices.Contains(available, "1A") || slices.Contains(available, "1C") {
		t.Fatal("held seats leaked into the available list")
	}
}

func TestAvailableSeatsUnknownTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM trips t").WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := SeatMapService{DB: db}
	if _, _, err := svc.AvailableSeats(404); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
