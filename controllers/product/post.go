package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/velora-store/storefront-api/models"
	"gorm.io/gorm"
)

type VariantInput struct {
	Options map[string]string `json:"options" binding:"required"`
	Price   float64           `json:"price"`
	Stock   int               `json:"stock"`
}

type ProductAttributeInput struct {
	AttributeID uint    `json:"attribute_id" binding:"required"`
	Value       string  `json:"value" binding:"required"`
	Image       string  `json:"image"`
	PriceDelta  float64 `json:"price_delta"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug"`
	Brand       string  `json:"brand"`
	Description string  `json:"description"`
	Image       string  `json:"image"` // already-hosted URL
	Price       float64 `json:"price" binding:"required"`
	ListPrice   float64 `json:"list_price"`
	Stock       int     `json:"stock"`
	CategoryID  *uint   `json:"category_id"`

	Attributes []ProductAttributeInput `json:"attributes"`
	Variants   []VariantInput          `json:"variants"`
}

// Slugify lowercases and dash-joins a product or category name.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		slug := req.Slug
		if slug == "" {
			slug = Slugify(req.Name)
		}

		if req.CategoryID != nil {
			var count int64
			if err := db.Model(&models.Category{}).Where("id = ?", *req.CategoryID).
				Count(&count).Error; err != nil || count == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
		}

		product := models.Product{
			Name:         req.Name,
			Slug:         slug,
			Brand:        req.Brand,
			Description:  req.Description,
			Image:        req.Image,
			Price:        req.Price,
			ListPrice:    req.ListPrice,
			CountInStock: req.Stock,
			CategoryID:   req.CategoryID,
		}
		for _, a := range req.Attributes {
			product.Attributes = append(product.Attributes, models.ProductAttribute{
				AttributeID: a.AttributeID,
				Value:       a.Value,
				Image:       a.Image,
				PriceDelta:  a.PriceDelta,
			})
		}
		for _, v := range req.Variants {
			product.Variants = append(product.Variants, models.Variant{
				Options: v.Options,
				Price:   v.Price,
				Stock:   v.Stock,
			})
		}
		// A variant-bearing product aggregates its variant stocks.
		product.CountInStock = product.AggregateStock()

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
