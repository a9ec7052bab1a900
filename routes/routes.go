package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/velora-store/storefront-api/cache"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the public shop,
// guest auth, cart, order, appointment and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts *cache.CartStore) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Public storefront + JWT-protected cart/user routes
	SetupShopRoutes(r, db, carts)

	// 3️⃣ Order routes
	SetupOrderRoutes(r, db)

	// 4️⃣ Appointment booking
	SetupAppointmentRoutes(r, db)

	// 5️⃣ Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
