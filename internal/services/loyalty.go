package services

import (
	"database/sql"
	"fmt"

	intconfig "quicktransit/internal/config"
	"quicktransit/internal/domain"
	"quicktransit/internal/domain/models"
	"quicktransit/internal/repositories"
	"quicktransit/internal/utils"
)

// LoyaltyService exposes the point ledger: threshold-based accrual and
// free-trip redemption. This is the second of the two free-trip mechanisms;
// booking creation runs its own counting rule and never calls in here.
type LoyaltyService struct {
	LoyaltyRepo repositories.LoyaltyRepo
	DB          *sql.DB
	RequestID   string
}

func (s LoyaltyService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s LoyaltyService) repo() repositories.LoyaltyRepo {
	if s.LoyaltyRepo.DB != nil {
		return s.LoyaltyRepo
	}
	return repositories.LoyaltyRepo{DB: s.db()}
}

func (s LoyaltyService) Get(customerID int64) (models.Loyalty, error) {
	return s.repo().GetOrCreate(customerID)
}

// AddPoints credits the balance and runs the single 100-point conversion
// check.
func (s LoyaltyService) AddPoints(customerID int64, amount int) (models.Loyalty, error) {
	if amount <= 0 {
		return models.Loyalty{}, domain.ValidationError{Field: "points", Msg: "must be positive"}
	}
	led, err := s.repo().GetOrCreate(customerID)
	if err != nil {
		return models.Loyalty{}, domain.InternalError{Err: err}
	}
	led.ApplyPoints(amount)
	if err := s.repo().Save(led); err != nil {
		return models.Loyalty{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "loyalty", "add_points",
		fmt.Sprintf("customer_id=%d amount=%d balance=%d eligible=%t", customerID, amount, led.Points, led.FreeTripEligible))
	return led, nil
}

// RedeemFreeTrip consumes eligibility; returns a StateError when the
// customer has none to redeem.
func (s LoyaltyService) RedeemFreeTrip(customerID int64) (models.Loyalty, error) {
	led, err := s.repo().GetOrCreate(customerID)
	if err != nil {
		return models.Loyalty{}, domain.InternalError{Err: err}
	}
	if !led.RedeemFreeTrip() {
		return models.Loyalty{}, domain.StateError{Msg: "no free trip to redeem"}
	}
	if err := s.repo().Save(led); err != nil {
		return models.Loyalty{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "loyalty", "redeem", fmt.Sprintf("customer_id=%d", customerID))
	return led, nil
}
