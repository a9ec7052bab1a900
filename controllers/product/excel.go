package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/velora-store/storefront-api/models"
	"gorm.io/gorm"
)

// POST /admin/products/import-excel — bulk create/update from a
// spreadsheet with the columns the export writes (variants are not
// imported; they are managed through the product endpoints).
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			if len(row.Cells) < 11 {
				skippedCount++
				continue
			}

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			slug := get(2)
			brand := get(3)
			description := get(4)
			price, err1 := strconv.ParseFloat(get(5), 64)
			listPrice, _ := strconv.ParseFloat(get(6), 64)
			stock, _ := strconv.Atoi(get(7))
			image := get(9)
			categoryIDStr := get(10)

			if name == "" || err1 != nil {
				skippedCount++
				continue
			}
			if slug == "" {
				slug = Slugify(name)
			}

			var categoryID *uint
			if cid, err := strconv.Atoi(categoryIDStr); err == nil && cid > 0 {
				id := uint(cid)
				categoryID = &id
			}

			product := models.Product{
				Name:         name,
				Slug:         slug,
				Brand:        brand,
				Description:  description,
				Price:        price,
				ListPrice:    listPrice,
				CountInStock: stock,
				Image:        image,
				CategoryID:   categoryID,
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.Preload("Variants").First(&existing, id).Error; err == nil {
						existing.Name = product.Name
						existing.Slug = product.Slug
						existing.Brand = product.Brand
						existing.Description = product.Description
						existing.Price = product.Price
						existing.ListPrice = product.ListPrice
						existing.Image = product.Image
						existing.CategoryID = product.CategoryID
						// Variant-bearing products keep their aggregate.
						if len(existing.Variants) == 0 {
							existing.CountInStock = product.CountInStock
						}

						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
					}
				}
			}

			// Insert new product
			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
