package handlers

import (
	"net/http"
	"strconv"

	"quicktransit/internal/http/middleware"
	"quicktransit/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/reports/revenue?period=weekly
// GET /api/reports/revenue?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
//
// One endpoint serves both the period buckets and the ad-hoc date range; the
// two filters are mutually exclusive.
func Revenue(c *gin.Context) {
	svc := services.ReportsService{RequestID: middleware.GetRequestID(c)}

	if start, end := c.Query("start_date"), c.Query("end_date"); start != "" || end != "" {
		if c.Query("period") != "" {
			RespondError(c, http.StatusBadRequest, "use either period or a date range, not both", nil)
			return
		}
		rows, err := svc.RevenueRange(start, end)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"start_date": start, "end_date": end, "revenue": rows})
		return
	}

	period := services.ReportPeriod(c.DefaultQuery("period", string(services.PeriodDaily)))
	switch period {
	case services.PeriodDaily, services.PeriodWeekly, services.PeriodMonthly, services.PeriodYearly:
	default:
		RespondError(c, http.StatusBadRequest, "period must be daily, weekly, monthly or yearly", nil)
		return
	}

	rows, err := svc.Revenue(period)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to compute revenue", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"period": period, "revenue": rows})
}

// GET /api/reports/revenue-daily?days=7
func RevenueDaily(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 366 {
			RespondError(c, http.StatusBadRequest, "days must be between 1 and 366", err)
			return
		}
		days = parsed
	}

	svc := services.ReportsService{RequestID: middleware.GetRequestID(c)}
	rows, err := svc.DailyBreakdown(days)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to compute daily revenue", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_revenue": rows})
}
