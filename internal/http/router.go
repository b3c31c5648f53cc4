package http

import (
	"github.com/gin-gonic/gin"

	intconfig "quicktransit/internal/config"
	"quicktransit/internal/domain/models"
	"quicktransit/internal/http/handlers"
	"quicktransit/internal/http/middleware"
)

// NewRouter builds the engine with the full middleware chain and all routes
// mounted. Everything the router needs is fixed at startup.
func NewRouter(env intconfig.Env) *gin.Engine {
	handlers.Configure(env)

	r := gin.New()
	_ = r.SetTrustedProxies(nil)

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(env.CORSAllowedOrigins))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "route not found"})
	})

	secret := []byte(env.JWTSecret)
	api := r.Group("/api")

	// Public.
	api.GET("/health", handlers.Health)
	api.GET("/db-check", handlers.DBCheck)
	api.POST("/auth/login", handlers.Login)
	api.POST("/auth/register", handlers.Register)
	api.GET("/get-trip-price/", handlers.GetTripPrice)

	// Customer.
	customer := api.Group("")
	customer.Use(middleware.AuthRequired(secret), middleware.RequireRoles(models.RoleCustomer))
	{
		customer.GET("/customer-dashboard", handlers.CustomerDashboard)
		customer.GET("/trips", handlers.ListTrips)
		customer.GET("/trips/:id/seats", handlers.GetTripSeats)
		customer.GET("/locations", handlers.ListLocations)
		customer.GET("/my-bookings", handlers.MyBookings)
		customer.POST("/book-trip/:tripId", handlers.BookTrip)
		customer.POST("/payment/:tripId", handlers.BookTrip)
		customer.POST("/booking/cancel/:id", handlers.CancelBooking)
		customer.POST("/booking/reschedule/:id", handlers.RescheduleBooking)
		customer.GET("/receipt/:bookingId", handlers.DownloadReceipt)
		customer.GET("/loyalty", handlers.GetLoyalty)
		customer.POST("/loyalty/redeem", handlers.RedeemFreeTrip)
	}

	// Staff.
	staff := api.Group("")
	staff.Use(middleware.AuthRequired(secret), middleware.RequireRoles(models.RoleAdmin, models.RoleSuperuser))
	{
		staff.GET("/admin-dashboard", handlers.AdminDashboard)
		staff.GET("/reports/revenue", handlers.Revenue)
		staff.GET("/reports/revenue-daily", handlers.RevenueDaily)
		staff.GET("/generate-receipt/:bookingId", handlers.GenerateReceipt)

		admin := staff.Group("/admin")
		admin.GET("/trips", handlers.ListAllTrips)
		admin.POST("/trips", handlers.CreateTrip)
		admin.PUT("/trips/:id", handlers.UpdateTrip)
		admin.GET("/buses", handlers.ListBuses)
		admin.POST("/buses", handlers.CreateBus)
		admin.PUT("/buses/:id", handlers.UpdateBus)
		admin.GET("/inventory", handlers.ListBusInventory)
		admin.PUT("/inventory", handlers.UpsertBusInventory)
		admin.POST("/locations", handlers.CreateLocation)
		admin.GET("/route-prices", handlers.ListRoutePrices)
		admin.PUT("/route-prices", handlers.UpsertRoutePrice)
		admin.POST("/loyalty/:customerId/points", handlers.AddLoyaltyPoints)
	}

	return r
}
