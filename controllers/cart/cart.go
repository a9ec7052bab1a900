package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/velora-store/storefront-api/cache"
	"github.com/velora-store/storefront-api/models"
	"gorm.io/gorm"
)

type UpdateCartRequest struct {
	Items []models.CartItem `json:"items" binding:"required"`
}

// GET /cart — an unknown guest gets an empty cart, not a 404.
func GetCart(store *cache.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := currentGuestID(c)
		if guestID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		cart, err := store.Get(c.Request.Context(), guestID)
		if errors.Is(err, cache.ErrCartNotFound) {
			c.JSON(http.StatusOK, models.Cart{GuestID: guestID, Items: []models.CartItem{}})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /cart — replaces the cart contents. Line items referring to the
// same product with the same selections are merged before storing, and
// products are checked for existence so dead references never persist.
func UpdateCart(db *gorm.DB, store *cache.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := currentGuestID(c)
		if guestID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req UpdateCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		items := models.MergeCartItems(req.Items)
		for _, item := range items {
			if item.Quantity < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
				return
			}
			var count int64
			if err := db.Model(&models.Product{}).Where("id = ?", item.ProductID).
				Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
				return
			}
			if count == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
		}

		now := time.Now()
		cart := models.Cart{
			GuestID:   guestID,
			Items:     items,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if existing, err := store.Get(c.Request.Context(), guestID); err == nil {
			cart.CreatedAt = existing.CreatedAt
		}

		if err := store.Set(c.Request.Context(), guestID, &cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart
func ClearCart(store *cache.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := currentGuestID(c)
		if guestID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := store.Delete(c.Request.Context(), guestID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

func currentGuestID(c *gin.Context) string {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
