package services

import (
	"database/sql"
	"fmt"
	"slices"
	"time"

	intconfig "quicktransit/internal/config"
	"quicktransit/internal/domain"
	"quicktransit/internal/domain/models"
	"quicktransit/internal/repositories"
	"quicktransit/internal/utils"
)

// BookingService owns the booking lifecycle: create (with loyalty accrual,
// free-trip promotion and payment), cancel, reschedule.
type BookingService struct {
	TripRepo    repositories.TripRepo
	BookingRepo repositories.BookingRepo
	LoyaltyRepo repositories.LoyaltyRepo
	SaleRepo    repositories.SaleRepo
	Payments    PaymentService
	DB          *sql.DB
	RequestID   string
	Now         func() time.Time
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s BookingService) trips() repositories.TripRepo {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepo{DB: s.db()}
}

func (s BookingService) bookings() repositories.BookingRepo {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepo{DB: s.db()}
}

func (s BookingService) loyalty() repositories.LoyaltyRepo {
	if s.LoyaltyRepo.DB != nil {
		return s.LoyaltyRepo
	}
	return repositories.LoyaltyRepo{DB: s.db()}
}

func (s BookingService) sales() repositories.SaleRepo {
	if s.SaleRepo.DB != nil {
		return s.SaleRepo
	}
	return repositories.SaleRepo{DB: s.db()}
}

// Create books a seat on a trip and runs the payment flow.
//
// Order of business rules: the booking starts BOOKED, earns its loyalty
// points while BOOKED, may be promoted to FREE by the 1-in-4 counting rule,
// and only a non-free booking is charged. A successful charge moves it to
// PAID and emits a ticket sale for the trip price; a failed charge leaves it
// at its pre-payment status with no sale. The ledger is credited with the raw
// point award afterwards; the 100-point threshold belongs to the ledger's own
// AddPoints path and is deliberately not applied here.
func (s BookingService) Create(customerID, tripID int64, seat string, method PaymentMethod) (models.Booking, error) {
	trip, err := s.trips().GetWithBus(tripID)
	if err != nil {
		return models.Booking{}, err
	}
	if !trip.IsAvailable(s.now()) {
		return models.Booking{}, domain.StateError{Msg: "trip is no longer available"}
	}

	seat = utils.NormalizeSeat(seat)
	if !models.ValidSeatNumber(seat) {
		return models.Booking{}, domain.ValidationError{Field: "seat_number", Msg: "seat must be like '1A' or '12B'"}
	}
	labels := trip.Bus.SeatLabels()
	if !slices.Contains(labels, seat) {
		return models.Booking{}, domain.ValidationError{Field: "seat_number", Msg: "seat " + seat + " does not exist on this bus"}
	}

	taken, err := s.bookings().TakenSeats(tripID)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	if slices.Contains(taken, seat) {
		return models.Booking{}, domain.ConflictError{Resource: "seat", Msg: "seat " + seat + " is already booked"}
	}

	bookedCount, err := s.bookings().CountByStatus(customerID, models.StatusBooked)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	freeCount, err := s.bookings().CountByStatus(customerID, models.StatusFree)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	booking := models.Booking{
		CustomerID: customerID,
		TripID:     trip.ID,
		SeatNumber: seat,
		Status:     models.StatusBooked,
	}
	booking.CalculateLoyaltyPoints()
	promoted := booking.PromoteToFree(bookedCount, freeCount)

	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	// The unique seat_hold index makes this insert the real availability
	// check; the read above only keeps the common case friendly.
	id, err := s.bookings().Insert(tx, booking)
	if err != nil {
		return models.Booking{}, err
	}
	booking.ID = id

	if !promoted {
		pay := s.Payments.Charge(method, trip.Price)
		if pay.Success {
			booking.Status = models.StatusPaid
			if err := s.bookings().UpdateStatus(tx, id, models.StatusPaid); err != nil {
				return models.Booking{}, domain.InternalError{Err: err}
			}
			if _, err := s.sales().Insert(tx, models.TicketSale{
				BusID:     trip.BusID,
				TripID:    trip.ID,
				Amount:    trip.Price,
				Reference: pay.Reference,
			}); err != nil {
				return models.Booking{}, domain.InternalError{Err: err}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	if err := s.creditLedger(customerID, booking.LoyaltyPoints); err != nil {
		// booking stands; the ledger can be reconciled from booking rows
		utils.LogEvent(s.RequestID, "booking", "create", "ledger credit failed: "+err.Error())
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d trip_id=%d seat=%s status=%s", id, tripID, seat, booking.Status))
	booking.BookingDate = s.now()
	return booking, nil
}

// creditLedger adds the booking's raw award to the customer's balance. This
// path does not run the 100-point conversion; that check fires only through
// the ledger's own AddPoints operation.
func (s BookingService) creditLedger(customerID int64, points int) error {
	led, err := s.loyalty().GetOrCreate(customerID)
	if err != nil {
		return err
	}
	led.Points += points
	return s.loyalty().Save(led)
}

// ListForCustomer returns the customer's booking history, newest first.
func (s BookingService) ListForCustomer(customerID int64) ([]models.Booking, error) {
	return s.bookings().ListByCustomer(customerID)
}

// Cancel moves an owned booking to CANCELED. Allowed from BOOKED, PAID and
// RESCHEDULED only; there is no refund logic.
func (s BookingService) Cancel(customerID, bookingID int64) (models.Booking, error) {
	booking, err := s.bookings().GetOwned(bookingID, customerID)
	if err != nil {
		return models.Booking{}, err
	}
	if !booking.CanCancel() {
		return models.Booking{}, domain.StateError{Msg: "you can only cancel a booked, paid or rescheduled trip"}
	}
	if err := s.bookings().UpdateStatus(s.db(), bookingID, models.StatusCanceled); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	booking.Status = models.StatusCanceled
	utils.LogEvent(s.RequestID, "booking", "cancel", fmt.Sprintf("booking_id=%d", bookingID))
	return booking, nil
}

// Reschedule points an owned booking at another available trip. The seat is
// carried over without re-checking availability on the destination trip.
func (s BookingService) Reschedule(customerID, bookingID, newTripID int64) (models.Booking, error) {
	booking, err := s.bookings().GetOwned(bookingID, customerID)
	if err != nil {
		return models.Booking{}, err
	}
	if !booking.CanReschedule() {
		return models.Booking{}, domain.StateError{Msg: "you can only reschedule a booked, paid or rescheduled trip"}
	}

	newTrip, err := s.trips().GetWithBus(newTripID)
	if err != nil {
		return models.Booking{}, err
	}
	if !newTrip.IsAvailable(s.now()) {
		return models.Booking{}, domain.StateError{Msg: "the selected trip is not available"}
	}

	if err := s.bookings().Reassign(bookingID, newTripID); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	booking.TripID = newTripID
	booking.Status = models.StatusRescheduled
	utils.LogEvent(s.RequestID, "booking", "reschedule",
		fmt.Sprintf("booking_id=%d new_trip_id=%d", bookingID, newTripID))
	return booking, nil
}
