package services

import (
	"database/sql"
	"time"

	intconfig "quicktransit/internal/config"
	"quicktransit/internal/domain"
	"quicktransit/internal/domain/models"
	"quicktransit/internal/repositories"
	"quicktransit/internal/utils"
)

type ReportPeriod string

const (
	PeriodDaily   ReportPeriod = "daily"
	PeriodWeekly  ReportPeriod = "weekly"
	PeriodMonthly ReportPeriod = "monthly"
	PeriodYearly  ReportPeriod = "yearly"
)

// PeriodStart computes the inclusive lower bound of a reporting period:
// daily is midnight today, weekly is seven days back, monthly the first of
// the month, yearly the first of January.
func PeriodStart(period ReportPeriod, now time.Time) time.Time {
	today := utils.StartOfDay(now)
	switch period {
	case PeriodWeekly:
		return today.AddDate(0, 0, -7)
	case PeriodMonthly:
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	case PeriodYearly:
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
	default:
		return today
	}
}

type ReportsService struct {
	SaleRepo  repositories.SaleRepo
	DB        *sql.DB
	RequestID string
	Now       func() time.Time
}

func (s ReportsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ReportsService) sales() repositories.SaleRepo {
	if s.SaleRepo.DB != nil {
		return s.SaleRepo
	}
	return repositories.SaleRepo{DB: s.db()}
}

func (s ReportsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Revenue aggregates ticket sales for one period bucket, grouped per bus and
// route, largest total first.
func (s ReportsService) Revenue(period ReportPeriod) ([]models.RevenueRow, error) {
	return s.sales().RevenueSince(PeriodStart(period, s.now()))
}

// RevenueRange serves the ad-hoc start/end report, independent of the period
// buckets. Dates are YYYY-MM-DD; the end date is inclusive.
func (s ReportsService) RevenueRange(startDate, endDate string) ([]models.RevenueRow, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, domain.ValidationError{Field: "start_date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, domain.ValidationError{Field: "end_date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	if end.Before(start) {
		return nil, domain.ValidationError{Field: "end_date", Msg: "must not precede start_date"}
	}
	return s.sales().RevenueBetween(start, end)
}

// DailyBreakdown returns per-day totals for the trailing n days, oldest
// first, zero-filled for days without sales.
func (s ReportsService) DailyBreakdown(days int) ([]models.DailyRevenue, error) {
	if days <= 0 {
		days = 7
	}
	today := utils.StartOfDay(s.now())
	out := make([]models.DailyRevenue, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		total, err := s.sales().TotalOn(day)
		if err != nil {
			return out, err
		}
		out = append(out, models.DailyRevenue{Date: utils.FormatDate(day), Revenue: total})
	}
	return out, nil
}

type RevenueSummary struct {
	Weekly  float64 `json:"weekly_total"`
	Monthly float64 `json:"monthly_total"`
	Yearly  float64 `json:"yearly_total"`
}

func (s ReportsService) Summary() (RevenueSummary, error) {
	var out RevenueSummary
	var err error
	now := s.now()
	if out.Weekly, err = s.sales().TotalSince(PeriodStart(PeriodWeekly, now)); err != nil {
		return out, err
	}
	if out.Monthly, err = s.sales().TotalSince(PeriodStart(PeriodMonthly, now)); err != nil {
		return out, err
	}
	out.Yearly, err = s.sales().TotalSince(PeriodStart(PeriodYearly, now))
	return out, err
}
