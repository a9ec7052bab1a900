package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velora-store/storefront-api/models"
	"gorm.io/gorm"
)

type AttributeRequest struct {
	Name   string   `json:"name" binding:"required"`
	Values []string `json:"values" binding:"required"`
}

// POST /admin/attributes
func CreateAttribute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AttributeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		attribute := models.Attribute{Name: req.Name, Values: req.Values}
		if err := db.Create(&attribute).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create attribute"})
			return
		}
		c.JSON(http.StatusCreated, attribute)
	}
}

// PUT /admin/attributes/:id
func UpdateAttribute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var attribute models.Attribute
		if err := db.First(&attribute, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attribute not found"})
			return
		}

		var req AttributeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		attribute.Name = req.Name
		attribute.Values = req.Values
		if err := db.Save(&attribute).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attribute"})
			return
		}
		c.JSON(http.StatusOK, attribute)
	}
}

// GET /attributes
func GetAllAttributes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var attributes []models.Attribute
		if err := db.Order("name ASC").Find(&attributes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attributes"})
			return
		}
		c.JSON(http.StatusOK, attributes)
	}
}

// DELETE /admin/attributes/:id — refused while products still select
// from the attribute.
func DeleteAttribute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var inUse int64
		if err := db.Model(&models.ProductAttribute{}).Where("attribute_id = ?", id).
			Count(&inUse).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check attribute usage"})
			return
		}
		if inUse > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Attribute is in use by products"})
			return
		}

		result := db.Delete(&models.Attribute{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete attribute"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attribute not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Attribute deleted successfully"})
	}
}
