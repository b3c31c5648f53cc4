package handlers

import (
	"net/http"
	"strconv"

	"quicktransit/internal/domain"
	"quicktransit/internal/domain/models"
	"quicktransit/internal/repositories"
	"quicktransit/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/get-trip-price/?origin_id=1&destination_id=2
//
// The response bodies here are part of the public contract the booking page
// depends on; keep them exactly as they are.
func GetTripPrice(c *gin.Context) {
	originID, err1 := strconv.ParseInt(c.Query("origin_id"), 10, 64)
	destinationID, err2 := strconv.ParseInt(c.Query("destination_id"), 10, 64)
	if err1 != nil || err2 != nil || originID <= 0 || destinationID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	price, err := repositories.RouteRepo{}.GetPrice(originID, destinationID)
	if err != nil {
		if domain.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Price not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"price": price})
}

// GET /api/locations
func ListLocations(c *gin.Context) {
	locations, err := repositories.RouteRepo{}.ListLocations()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list locations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

type locationRequest struct {
	Name string `json:"name"`
}

// POST /api/admin/locations
func CreateLocation(c *gin.Context) {
	var req locationRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	name := utils.NormalizeSpace(req.Name)
	if name == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}

	id, err := repositories.RouteRepo{}.CreateLocation(name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"location": models.Location{ID: id, Name: name}})
}

// GET /api/admin/route-prices
func ListRoutePrices(c *gin.Context) {
	prices, err := repositories.RouteRepo{}.ListPrices()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list route prices", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route_prices": prices})
}

type routePriceRequest struct {
	OriginID      int64   `json:"origin_id"`
	DestinationID int64   `json:"destination_id"`
	Price         float64 `json:"price"`
}

// PUT /api/admin/route-prices
func UpsertRoutePrice(c *gin.Context) {
	var req routePriceRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.OriginID <= 0 || req.DestinationID <= 0 || req.Price < 0 {
		RespondError(c, http.StatusBadRequest, "origin_id, destination_id and a non-negative price are required", nil)
		return
	}

	rp := models.RoutePrice{OriginID: req.OriginID, DestinationID: req.DestinationID, Price: req.Price}
	if err := (repositories.RouteRepo{}).UpsertPrice(rp); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save route price", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route_price": rp})
}
