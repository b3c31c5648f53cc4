package services

import (
	"testing"
	"time"

	"quicktransit/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPeriodStart(t *testing.T) {
	now := time.Date(2026, 3, 18, 14, 30, 0, 0, time.Local)

	cases := []struct {
		period ReportPeriod
		want   time.Time
	}{
		{PeriodDaily, time.Date(2026, 3, 18, 0, 0, 0, 0, time.Local)},
		{PeriodWeekly, time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local)},
		{PeriodMonthly, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)},
		{PeriodYearly, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)},
	}
	for _, tc := range cases {
		if got := PeriodStart(tc.period, now); !got.Equal(tc.want) {
			t.Errorf("PeriodStart(%s) = %v, want %v", tc.period, got, tc.want)
		}
	}
}

func TestRevenueRangeValidation(t *testing.T) {
	svc := ReportsService{}

	if _, err := svc.RevenueRange("not-a-date", "2026-03-18"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for bad start, got %v", err)
	}
	if _, err := svc.RevenueRange("2026-03-18", "oops"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for bad end, got %v", err)
	}
	if _, err := svc.RevenueRange("2026-03-18", "2026-03-01"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for inverted range, got %v", err)
	}
}

func TestRevenueGroupsByBusAndRoute(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM ticket_sales s").
		WillReturnRows(sqlmock.NewRows([]string{"name", "origin", "destination", "total"}).
			AddRow("Coast Express", "Nairobi", "Mombasa", 8400.0).
			AddRow("Lake Shuttle", "Nairobi", "Kisumu", 3600.0))

	svc := ReportsService{DB: db, Now: func() time.Time {
		return time.Date(2026, 3, 18, 14, 30, 0, 0, time.Local)
	}}
	rows, err := svc.Revenue(PeriodWeekly)
	if err != nil {
		t.Fatalf("Revenue returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Total < rows[1].Total {
		t.Fatal("rows not ordered largest total first")
	}
	if rows[0].BusName != "Coast Express" || rows[0].Origin != "Nairobi" {
		t.Fatalf("unexpected top row: %+v", rows[0])
	}
}

func TestDailyBreakdownZeroFills(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	for i := 0; i < 3; i++ {
		mock.ExpectQuery("SELECT COALESCE").
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(float64(i) * 100))
	}

	svc := ReportsService{DB: db, Now: func() time.Time {
		return time.Date(2026, 3, 18, 14, 30, 0, 0, time.Local)
	}}
	rows, err := svc.DailyBreakdown(3)
	if err != nil {
		t.Fatalf("DailyBreakdown returned error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 days, got %d", len(rows))
	}
	if rows[0].Date != "2026-03-16" || rows[2].Date != "2026-03-18" {
		t.Fatalf("dates not oldest first: %v", rows)
	}
	if rows[0].Revenue != 0 {
		t.Fatalf("day without sales should be zero, got %.2f", rows[0].Revenue)
	}
}
