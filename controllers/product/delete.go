package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velora-store/storefront-api/models"
	"gorm.io/gorm"
)

// DELETE /admin/products/:id — soft-deletes the product and removes
// its variants and attribute rows.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", product.ID).
				Delete(&models.Variant{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", product.ID).
				Delete(&models.ProductAttribute{}).Error; err != nil {
				return err
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
