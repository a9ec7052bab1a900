package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/velora-store/storefront-api/models"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Collapses concurrent detail reads for the same product into one
// query (hot product pages during a launch).
var detailFlight singleflight.Group

// GetProduct returns a single product with categories, attributes and
// variants. URL param accepts the numeric id or the slug:
// /products/:idOrSlug
func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("id")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		v, err, _ := detailFlight.Do(key, func() (interface{}, error) {
			query := db.Preload("Category").Preload("Variants").
				Preload("Attributes.Attribute")
			if id, convErr := strconv.Atoi(key); convErr == nil {
				query = query.Where("id = ?", id)
			} else {
				query = query.Where("slug = ?", key)
			}

			var product models.Product
			if err := query.First(&product).Error; err != nil {
				return nil, err
			}
			return &product, nil
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, v.(*models.Product))
	}
}
