package routes

import (
	"github.com/gin-gonic/gin"
	appointmentControllers "github.com/velora-store/storefront-api/controllers/appointment"
	orderControllers "github.com/velora-store/storefront-api/controllers/order"
	"github.com/velora-store/storefront-api/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Checkout: shipping form + cart items + total price
		orders.POST("/place", orderControllers.PlaceOrderHandler(db))

		// websocket endpoint for real-time order updates (admin console)
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Fetch orders for a specific user
		orders.GET("/user/:userID", middleware.ValidateToken, orderControllers.GetUserOrdersHandler(db))

		// Admin order management
		admin := orders.Group("")
		admin.Use(middleware.ValidateAPIKey)
		{
			admin.GET("/", orderControllers.GetAllOrdersHandler(db))
			admin.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			admin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			admin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}
	}
}

func SetupAppointmentRoutes(r *gin.Engine, db *gorm.DB) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", appointmentControllers.BookAppointment(db))
		appointments.GET("/services", appointmentControllers.GetAllServices(db))

		admin := appointments.Group("")
		admin.Use(middleware.ValidateAPIKey)
		{
			admin.GET("", appointmentControllers.GetAllAppointments(db))
			admin.PUT("/:id/status", appointmentControllers.UpdateAppointmentStatus(db))
			admin.DELETE("/:id", appointmentControllers.DeleteAppointment(db))
		}
	}
}
