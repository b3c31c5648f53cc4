package handlers

import (
	"net/http"

	"quicktransit/internal/http/middleware"
	"quicktransit/internal/services"

	"github.com/gin-gonic/gin"
)

type bookTripRequest struct {
	SeatNumber    string `json:"seat_number"`
	PaymentMethod string `json:"payment_method"`
}

// POST /api/book-trip/:tripId
//
// Also mounted as /api/payment/:tripId for older clients; booking and
// payment are one request.
func BookTrip(c *gin.Context) {
	customerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	tripID, ok := ParamID(c, "tripId")
	if !ok {
		return
	}
	var req bookTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	method, err := services.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.Create(customerID, tripID, req.SeatNumber, method)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "booking confirmed",
		"booking": booking,
	})
}

// GET /api/my-bookings
func MyBookings(c *gin.Context) {
	customerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	svc := services.BookingService{}
	bookings, err := svc.ListForCustomer(customerID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// POST /api/booking/cancel/:id
func CancelBooking(c *gin.Context) {
	customerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	bookingID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.Cancel(customerID, bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "booking canceled",
		"booking": booking,
	})
}

type rescheduleRequest struct {
	NewTripID int64 `json:"new_trip_id"`
}

// POST /api/booking/reschedule/:id
func RescheduleBooking(c *gin.Context) {
	customerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	bookingID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req rescheduleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.NewTripID <= 0 {
		RespondError(c, http.StatusBadRequest, "new_trip_id is required", nil)
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.Reschedule(customerID, bookingID, req.NewTripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "booking rescheduled",
		"booking": booking,
	})
}
