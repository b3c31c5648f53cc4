package handlers

import (
	"net/http"

	"quicktransit/internal/domain/models"
	"quicktransit/internal/repositories"
	"quicktransit/internal/utils"

	"github.com/gin-gonic/gin"
)

type busRequest struct {
	Name          string  `json:"name"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureTime string  `json:"departure_time"`
	Price         float64 `json:"price"`
	TotalSeats    int     `json:"total_seats"`
	SeatsPerRow   int     `json:"seats_per_row"`
	IsAvailable   *bool   `json:"is_available"`
}

// GET /api/admin/buses
func ListBuses(c *gin.Context) {
	buses, err := repositories.BusRepo{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list buses", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"buses": buses})
}

// POST /api/admin/buses
func CreateBus(c *gin.Context) {
	var req busRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Name == "" || req.TotalSeats <= 0 || req.SeatsPerRow <= 0 {
		RespondError(c, http.StatusBadRequest, "name, total_seats and seats_per_row are required", nil)
		return
	}

	departure, err := utils.ParseDateTime(req.DepartureTime)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "departure_time must be YYYY-MM-DD HH:MM:SS", err)
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	bus := models.Bus{
		Name:          req.Name,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: departure,
		Price:         req.Price,
		TotalSeats:    req.TotalSeats,
		SeatsPerRow:   req.SeatsPerRow,
		IsAvailable:   available,
	}
	id, err := repositories.BusRepo{}.Create(bus)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create bus", err)
		return
	}
	bus.ID = id
	c.JSON(http.StatusCreated, gin.H{"bus": bus})
}

// PUT /api/admin/buses/:id
func UpdateBus(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req busRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.BusRepo{}
	bus, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if req.Name != "" {
		bus.Name = req.Name
	}
	if req.Origin != "" {
		bus.Origin = req.Origin
	}
	if req.Destination != "" {
		bus.Destination = req.Destination
	}
	if req.DepartureTime != "" {
		departure, err := utils.ParseDateTime(req.DepartureTime)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "departure_time must be YYYY-MM-DD HH:MM:SS", err)
			return
		}
		bus.DepartureTime = departure
	}
	if req.Price != 0 {
		bus.Price = req.Price
	}
	if req.TotalSeats != 0 {
		bus.TotalSeats = req.TotalSeats
	}
	if req.SeatsPerRow != 0 {
		bus.SeatsPerRow = req.SeatsPerRow
	}
	if req.IsAvailable != nil {
		bus.IsAvailable = *req.IsAvailable
	}

	if err := repo.Update(bus); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus": bus})
}

// GET /api/admin/inventory
func ListBusInventory(c *gin.Context) {
	inventory, err := repositories.BusRepo{}.ListInventory()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list inventory", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": inventory})
}

type inventoryRequest struct {
	BusID        int64  `json:"bus_id"`
	Status       string `json:"status"`
	PurchaseDate string `json:"purchase_date"`
}

// PUT /api/admin/inventory
func UpsertBusInventory(c *gin.Context) {
	var req inventoryRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	status := models.InventoryStatus(req.Status)
	switch status {
	case models.InventoryNew, models.InventoryRepaired, models.InventoryNotServiced:
	default:
		RespondError(c, http.StatusBadRequest, "status must be NEW, REPAIRED or NOT_SERVICED", nil)
		return
	}
	if _, err := (repositories.BusRepo{}).GetByID(req.BusID); err != nil {
		RespondDomainError(c, err)
		return
	}

	inv := models.BusInventory{BusID: req.BusID, Status: status, PurchaseDate: req.PurchaseDate}
	if err := (repositories.BusRepo{}).UpsertInventory(inv); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save inventory", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": inv})
}
