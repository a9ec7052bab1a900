package routes

import (
	"github.com/gin-gonic/gin"
	appointmentControllers "github.com/velora-store/storefront-api/controllers/appointment"
	productcontroller "github.com/velora-store/storefront-api/controllers/product"
	userControllers "github.com/velora-store/storefront-api/controllers/user"
	"github.com/velora-store/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Attribute Management ───────────
		attributeAdmin := adminGroup.Group("/attributes")
		{
			attributeAdmin.POST("", productcontroller.CreateAttribute(db))
			attributeAdmin.PUT("/:id", productcontroller.UpdateAttribute(db))
			attributeAdmin.GET("", productcontroller.GetAllAttributes(db))
			attributeAdmin.DELETE("/:id", productcontroller.DeleteAttribute(db))
		}

		// ─────────── Bookable Services ───────────
		serviceAdmin := adminGroup.Group("/services")
		{
			serviceAdmin.POST("", appointmentControllers.CreateService(db))
			serviceAdmin.PUT("/:id", appointmentControllers.UpdateService(db))
			serviceAdmin.GET("", appointmentControllers.GetAllServices(db))
			serviceAdmin.DELETE("/:id", appointmentControllers.DeleteService(db))
		}
	}
}
