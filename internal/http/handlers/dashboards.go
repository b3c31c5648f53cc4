package handlers

import (
	"net/http"
	"time"

	"quicktransit/internal/domain/models"
	"quicktransit/internal/http/middleware"
	"quicktransit/internal/repositories"
	"quicktransit/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/customer-dashboard
//
// eligible_for_free_trip here mirrors the booking page hint: four or more
// BOOKED trips on record. The actual promotion happens at booking time.
func CustomerDashboard(c *gin.Context) {
	customerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookingRepo := repositories.BookingRepo{}
	bookings, err := bookingRepo.ListByCustomer(customerID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load bookings", err)
		return
	}
	trips, err := repositories.TripRepo{}.ListUpcoming(time.Now())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load trips", err)
		return
	}
	bookedCount, err := bookingRepo.CountByStatus(customerID, models.StatusBooked)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load bookings", err)
		return
	}
	loyalty, err := (services.LoyaltyService{RequestID: middleware.GetRequestID(c)}).Get(customerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings":               bookings,
		"upcoming_trips":         trips,
		"loyalty":                loyalty,
		"eligible_for_free_trip": bookedCount >= 4,
	})
}

// GET /api/admin/dashboard
func AdminDashboard(c *gin.Context) {
	bookings, err := repositories.BookingRepo{}.ListAll()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load bookings", err)
		return
	}
	trips, err := repositories.TripRepo{}.ListAll()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load trips", err)
		return
	}

	reports := services.ReportsService{RequestID: middleware.GetRequestID(c)}
	summary, err := reports.Summary()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to compute profits", err)
		return
	}
	daily, err := reports.DailyBreakdown(7)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to compute profits", err)
		return
	}

	profits := gin.H{}
	for _, period := range []services.ReportPeriod{
		services.PeriodDaily, services.PeriodWeekly, services.PeriodMonthly, services.PeriodYearly,
	} {
		rows, err := reports.Revenue(period)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to compute profits", err)
			return
		}
		profits[string(period)] = rows
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings":      bookings,
		"trips":         trips,
		"daily_profits": daily,
		"profits":       profits,
		"totals": gin.H{
			"weekly":  summary.Weekly,
			"monthly": summary.Monthly,
			"yearly":  summary.Yearly,
		},
	})
}
