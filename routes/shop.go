package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velora-store/storefront-api/cache"
	cartControllers "github.com/velora-store/storefront-api/controllers/cart"
	productControllers "github.com/velora-store/storefront-api/controllers/product"
	userControllers "github.com/velora-store/storefront-api/controllers/user"
	"github.com/velora-store/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupShopRoutes registers the public storefront endpoints plus the
// JWT-protected cart and profile endpoints.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB, carts *cache.CartStore) {
	// ──────────────── Browse Catalog (public) ────────────────
	r.GET("/products", productControllers.GetProducts(db))    // list + search
	r.GET("/products/:id", productControllers.GetProduct(db)) // id or slug
	r.GET("/categories", productControllers.GetAllCategories(db))
	r.GET("/attributes", productControllers.GetAllAttributes(db))

	// ──────────────── Shopping Cart (guest/user JWT) ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("/", cartControllers.GetCart(carts))
		cartGroup.PUT("/", cartControllers.UpdateCart(db, carts))
		cartGroup.DELETE("/", cartControllers.ClearCart(carts))
	}

	// ──────────────── User Profile (JWT) ────────────────
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))
	}
}
