package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/velora-store/storefront-api/models"
	"gorm.io/gorm"
)

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Slug        *string  `json:"slug"`
	Brand       *string  `json:"brand"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price"`
	ListPrice   *float64 `json:"list_price"`
	Stock       *int     `json:"stock"`
	CategoryID  *uint    `json:"category_id"`

	// When present, replaces the full attribute / variant set.
	Attributes *[]ProductAttributeInput `json:"attributes"`
	Variants   *[]VariantInput          `json:"variants"`
}

// PUT /admin/products/:id — partial update; attributes and variants
// are replaced wholesale when submitted.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Variants").Preload("Attributes").
			First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Slug != nil {
			product.Slug = *req.Slug
		}
		if req.Brand != nil {
			product.Brand = *req.Brand
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Image != nil {
			product.Image = *req.Image
		}
		if req.Price != nil {
			product.Price = *req.Price
		}
		if req.ListPrice != nil {
			product.ListPrice = *req.ListPrice
		}
		if req.Stock != nil {
			product.CountInStock = *req.Stock
		}
		if req.CategoryID != nil {
			product.CategoryID = req.CategoryID
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if req.Attributes != nil {
				if err := tx.Where("product_id = ?", product.ID).
					Delete(&models.ProductAttribute{}).Error; err != nil {
					return err
				}
				product.Attributes = nil
				for _, a := range *req.Attributes {
					product.Attributes = append(product.Attributes, models.ProductAttribute{
						ProductID:   product.ID,
						AttributeID: a.AttributeID,
						Value:       a.Value,
						Image:       a.Image,
						PriceDelta:  a.PriceDelta,
					})
				}
			}
			if req.Variants != nil {
				if err := tx.Where("product_id = ?", product.ID).
					Delete(&models.Variant{}).Error; err != nil {
					return err
				}
				product.Variants = nil
				for _, v := range *req.Variants {
					product.Variants = append(product.Variants, models.Variant{
						ProductID: product.ID,
						Options:   v.Options,
						Price:     v.Price,
						Stock:     v.Stock,
					})
				}
			}

			product.CountInStock = product.AggregateStock()
			return tx.Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
