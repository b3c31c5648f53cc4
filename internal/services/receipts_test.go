package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"quicktransit/internal/domain"
	"quicktransit/internal/domain/models"
)

func staticReceipt(d ReceiptData) func(int64) (ReceiptData, error) {
	return func(int64) (ReceiptData, error) { return d, nil }
}

func TestGenerateTextReceipt(t *testing.T) {
	svc := ReceiptService{Loader: staticReceipt(ReceiptData{
		BookingID:  11,
		Customer:   "wanjiku",
		Trip:       "Nairobi to Mombasa at 2026-03-02 09:00",
		SeatNumber: "1A",
		Status:     models.StatusPaid,
		Date:       "2026-03-01 09:00:00",
		Points:     5,
		Price:      1200,
	})}

	got, err := svc.GenerateText(11)
	if err != nil {
		t.Fatalf("GenerateText returned error: %v", err)
	}

	want := "Receipt for Booking\n" +
		"Customer: wanjiku\n" +
		"Trip: Nairobi to Mombasa at 2026-03-02 09:00\n" +
		"Seat: 1A\n" +
		"Status: PAID\n" +
		"Date: 2026-03-01 09:00:00\n" +
		"Points: 5\n"
	if got != want {
		t.Fatalf("receipt text mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGeneratePDFReceipt(t *testing.T) {
	svc := ReceiptService{
		SiteName: "Quick Transit Bus Booking System",
		Loader: staticReceipt(ReceiptData{
			BookingID:  11,
			Customer:   "wanjiku",
			Trip:       "Nairobi to Mombasa at 2026-03-02 09:00",
			SeatNumber: "1A",
			Status:     models.StatusFree,
			Date:       "2026-03-01 09:00:00",
			Points:     0,
			Price:      0,
		}),
	}

	pdf, filename, err := svc.GeneratePDF(11)
	if err != nil {
		t.Fatalf("GeneratePDF returned error: %v", err)
	}
	if filename != "receipt_11.pdf" {
		t.Fatalf("filename = %s, want receipt_11.pdf", filename)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output does not look like a PDF document")
	}
}

func TestGeneratePDFMissingLogoIsNotFatal(t *testing.T) {
	svc := ReceiptService{
		LogoPath: "static/logo/definitely-missing.jpeg",
		Loader: staticReceipt(ReceiptData{
			BookingID: 12, Customer: "otieno", Trip: "A to B at 2026-03-02 09:00",
			SeatNumber: "2B", Status: models.StatusPaid, Date: "2026-03-01", Points: 5, Price: 900,
		}),
	}

	if _, _, err := svc.GeneratePDF(12); err != nil {
		t.Fatalf("missing logo should be skipped, got error: %v", err)
	}
}

func TestReceiptLoaderErrorsPropagate(t *testing.T) {
	svc := ReceiptService{Loader: func(int64) (ReceiptData, error) {
		return ReceiptData{}, domain.NotFoundError{Resource: "booking", Err: errors.New("no rows")}
	}}

	if _, err := svc.GenerateText(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, _, err := svc.GeneratePDF(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTripDescribeFeedsReceipt(t *testing.T) {
	trip := models.Trip{Origin: "Nairobi", Destination: "Mombasa"}
	if !strings.HasPrefix(trip.Describe(), "Nairobi to Mombasa at ") {
		t.Fatalf("unexpected trip description: %s", trip.Describe())
	}
}
