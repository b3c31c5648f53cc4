package handlers

import (
	"net/http"
	"time"

	"quicktransit/internal/domain/models"
	"quicktransit/internal/repositories"
	"quicktransit/internal/services"
	"quicktransit/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/trips lists upcoming bookable trips.
func ListTrips(c *gin.Context) {
	trips, err := repositories.TripRepo{}.ListUpcoming(time.Now())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list trips", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GET /api/trips/:id/seats serves the seat map for the booking page.
func GetTripSeats(c *gin.Context) {
	tripID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	svc := services.SeatMapService{}
	trip, available, err := svc.AvailableSeats(tripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trip_id":         trip.ID,
		"price":           trip.Price,
		"available_seats": available,
	})
}

type tripRequest struct {
	BusID         int64   `json:"bus_id"`
	DepartureTime string  `json:"departure_time"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Price         float64 `json:"price"`
	Active        *bool   `json:"active"`
}

// GET /api/admin/trips
func ListAllTrips(c *gin.Context) {
	trips, err := repositories.TripRepo{}.ListAll()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list trips", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// POST /api/admin/trips
func CreateTrip(c *gin.Context) {
	var req tripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	departure, err := utils.ParseDateTime(req.DepartureTime)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "departure_time must be YYYY-MM-DD HH:MM:SS", err)
		return
	}
	if _, err := (repositories.BusRepo{}).GetByID(req.BusID); err != nil {
		RespondDomainError(c, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	trip := models.Trip{
		BusID:         req.BusID,
		DepartureTime: departure,
		Origin:        utils.NormalizeSpace(req.Origin),
		Destination:   utils.NormalizeSpace(req.Destination),
		Price:         req.Price,
		Active:        active,
	}
	id, err := repositories.TripRepo{}.Create(trip)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create trip", err)
		return
	}
	trip.ID = id
	c.JSON(http.StatusCreated, gin.H{"trip": trip})
}

// PUT /api/admin/trips/:id
func UpdateTrip(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req tripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.TripRepo{}
	trip, err := repo.GetWithBus(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if req.BusID != 0 {
		trip.BusID = req.BusID
	}
	if req.DepartureTime != "" {
		departure, err := utils.ParseDateTime(req.DepartureTime)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "departure_time must be YYYY-MM-DD HH:MM:SS", err)
			return
		}
		trip.DepartureTime = departure
	}
	if req.Origin != "" {
		trip.Origin = req.Origin
	}
	if req.Destination != "" {
		trip.Destination = req.Destination
	}
	if req.Price != 0 {
		trip.Price = req.Price
	}
	if req.Active != nil {
		trip.Active = *req.Active
	}

	if err := repo.Update(trip); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}
