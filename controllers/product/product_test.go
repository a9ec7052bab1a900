package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velora-store/storefront-api/models"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// In-memory sqlite is per-connection; keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Attribute{},
		&models.Product{},
		&models.ProductAttribute{},
		&models.Variant{},
	))
	return db
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "linen-shirt", Slugify("Linen Shirt"))
	assert.Equal(t, "linen-shirt", Slugify("  Linen   Shirt  "))
	assert.Equal(t, "shirt", Slugify("Shirt"))
}

func listProducts(t *testing.T, db *gorm.DB, query string) []models.Product {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products"+query, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	return products
}

func TestGetProducts_SearchAndCategoryFilter(t *testing.T) {
	db := setupTestDB(t)

	shirts := models.Category{Name: "Shirts", Slug: "shirts"}
	require.NoError(t, db.Create(&shirts).Error)
	socks := models.Category{Name: "Socks", Slug: "socks"}
	require.NoError(t, db.Create(&socks).Error)

	require.NoError(t, db.Create(&models.Product{
		Name: "Linen Shirt", Slug: "linen-shirt", Price: 30, CategoryID: &shirts.ID,
		Description: "breathable summer wear",
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		Name: "Wool Socks", Slug: "wool-socks", Price: 8, CategoryID: &socks.ID,
		Description: "warm winter socks",
	}).Error)

	// Case-insensitive substring over name and description.
	found := listProducts(t, db, "?search=LINEN")
	require.Len(t, found, 1)
	assert.Equal(t, "Linen Shirt", found[0].Name)

	found = listProducts(t, db, "?search=winter")
	require.Len(t, found, 1)
	assert.Equal(t, "Wool Socks", found[0].Name)

	// Category filter narrows the match.
	found = listProducts(t, db, "?search=w&category_id="+strconv.Itoa(int(socks.ID)))
	require.Len(t, found, 1)
	assert.Equal(t, "Wool Socks", found[0].Name)

	assert.Empty(t, listProducts(t, db, "?search=jacket"))
}

func TestGetProducts_PriceRange(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.Product{Name: "Cheap", Slug: "cheap", Price: 5}).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Dear", Slug: "dear", Price: 50}).Error)

	found := listProducts(t, db, "?min_price=10")
	require.Len(t, found, 1)
	assert.Equal(t, "Dear", found[0].Name)

	found = listProducts(t, db, "?max_price=10")
	require.Len(t, found, 1)
	assert.Equal(t, "Cheap", found[0].Name)
}
