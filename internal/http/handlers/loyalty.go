package handlers

import (
	"net/http"

	"quicktransit/internal/http/middleware"
	"quicktransit/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/loyalty
func GetLoyalty(c *gin.Context) {
	customerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	svc := services.LoyaltyService{RequestID: middleware.GetRequestID(c)}
	led, err := svc.Get(customerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"loyalty": led})
}

// POST /api/loyalty/redeem
func RedeemFreeTrip(c *gin.Context) {
	customerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	svc := services.LoyaltyService{RequestID: middleware.GetRequestID(c)}
	led, err := svc.RedeemFreeTrip(customerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "free trip redeemed",
		"loyalty": led,
	})
}

type addPointsRequest struct {
	Points int `json:"points"`
}

// POST /api/admin/loyalty/:customerId/points
func AddLoyaltyPoints(c *gin.Context) {
	customerID, ok := ParamID(c, "customerId")
	if !ok {
		return
	}
	var req addPointsRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.LoyaltyService{RequestID: middleware.GetRequestID(c)}
	led, err := svc.AddPoints(customerID, req.Points)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"loyalty": led})
}
