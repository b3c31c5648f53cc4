package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"os"

	intconfig "quicktransit/internal/config"
	"quicktransit/internal/domain/models"
	"quicktransit/internal/repositories"
	"quicktransit/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders booking receipts: plain text for the back office
// and a PDF download for the customer.
type ReceiptService struct {
	BookingRepo repositories.BookingRepo
	TripRepo    repositories.TripRepo
	UserRepo    repositories.UserRepo
	DB          *sql.DB
	SiteName    string
	LogoPath    string
	RequestID   string
	Loader      func(int64) (ReceiptData, error)
}

type ReceiptData struct {
	BookingID  int64
	Customer   string
	Trip       string
	SeatNumber string
	Status     models.BookingStatus
	Date       string
	Points     int
	Price      float64
}

func (s ReceiptService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ReceiptService) load(bookingID int64) (ReceiptData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}

	bookings := s.BookingRepo
	if bookings.DB == nil {
		bookings = repositories.BookingRepo{DB: s.db()}
	}
	trips := s.TripRepo
	if trips.DB == nil {
		trips = repositories.TripRepo{DB: s.db()}
	}
	users := s.UserRepo
	if users.DB == nil {
		users = repositories.UserRepo{DB: s.db()}
	}

	booking, err := bookings.GetByID(bookingID)
	if err != nil {
		return ReceiptData{}, err
	}
	trip, err := trips.GetWithBus(booking.TripID)
	if err != nil {
		return ReceiptData{}, err
	}
	customer, err := users.GetByID(booking.CustomerID)
	if err != nil {
		return ReceiptData{}, err
	}

	return ReceiptData{
		BookingID:  booking.ID,
		Customer:   customer.Username,
		Trip:       trip.Describe(),
		SeatNumber: booking.SeatNumber,
		Status:     booking.Status,
		Date:       utils.FormatDateTime(booking.BookingDate),
		Points:     booking.LoyaltyPoints,
		Price:      booking.ReceiptPrice(trip.Price),
	}, nil
}

// GenerateText renders the admin-facing plain-text receipt.
func (s ReceiptService) GenerateText(bookingID int64) (string, error) {
	d, err := s.load(bookingID)
	if err != nil {
		return "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "generate_text", fmt.Sprintf("booking_id=%d", bookingID))

	return fmt.Sprintf(
		"Receipt for Booking\n"+
			"Customer: %s\n"+
			"Trip: %s\n"+
			"Seat: %s\n"+
			"Status: %s\n"+
			"Date: %s\n"+
			"Points: %d\n",
		d.Customer, d.Trip, d.SeatNumber, d.Status, d.Date, d.Points,
	), nil
}

// GeneratePDF renders the customer-facing receipt. A missing or unreadable
// logo is skipped, never fatal.
func (s ReceiptService) GeneratePDF(bookingID int64) ([]byte, string, error) {
	d, err := s.load(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "generate_pdf", fmt.Sprintf("booking_id=%d", bookingID))

	title := s.SiteName
	if title == "" {
		title = "QuickTransit"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title+" Receipt", false)
	pdf.AddPage()

	if s.LogoPath != "" {
		if _, statErr := os.Stat(s.LogoPath); statErr == nil {
			pdf.ImageOptions(s.LogoPath, 10, 10, 30, 30, false, gofpdf.ImageOptions{}, 0, "")
			pdf.Ln(32)
		}
	}

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title+" Receipt")
	pdf.Ln(14)

	rows := [][2]string{
		{"Customer", d.Customer},
		{"Trip", d.Trip},
		{"Seat", d.SeatNumber},
		{"Status", string(d.Status)},
		{"Date", d.Date},
		{"Points", fmt.Sprintf("%d", d.Points)},
		{"Price", utils.FormatKES(d.Price)},
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	pdf.CellFormat(60, 8, "Field", "1", 0, "L", true, 0, "")
	pdf.CellFormat(120, 8, "Value", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.CellFormat(60, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(120, 8, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.Cell(0, 8, "Thank you!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("receipt_%d.pdf", d.BookingID)
	return buf.Bytes(), filename, nil
}
