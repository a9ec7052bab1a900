package orderControllers

import (
	"fmt"
	"testing"
	"time"

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
		&models.ShippingInfo{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderCounter{},
	))
	return db
}

func testShipping() ShippingForm {
	return ShippingForm{
		Name:    "Jane Doe",
		Phone:   "555-0101",
		Email:   "jane@example.com",
		Address: "1 Main St",
		// city/postal/country may be empty
	}
}

func seedVariantProduct(t *testing.T, db *gorm.DB, stock int) models.Product {
	category := models.Category{Name: "Shirts", Slug: "shirts"}
	require.NoError(t, db.Create(&category).Error)

	product := models.Product{
		Name:       "Linen Shirt",
		Slug:       "linen-shirt",
		Brand:      "Velora",
		Image:      "https://cdn.example.com/linen.jpg",
		Price:      29.90,
		CategoryID: &category.ID,
		Variants: []models.Variant{
			{Options: map[string]string{"Color": "red"}, Price: 31.50, Stock: stock},
		},
	}
	product.CountInStock = product.AggregateStock()
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestPlaceOrder_VariantScenario(t *testing.T) {
	db := setupTestDB(t)
	product := seedVariantProduct(t, db, 3)

	order, err := PlaceOrder(db, PlaceOrderRequest{
		Shipping:   testShipping(),
		TotalPrice: 63.00,
		Items: []models.CartItem{
			{ProductID: product.ID, Quantity: 2, Selections: map[string]string{"Color": "red"}},
		},
	})
	require.NoError(t, err)

	// Variant stock 3 - 2 = 1, sales 2, aggregate recomputed to 1.
	var variant models.Variant
	require.NoError(t, db.First(&variant, "product_id = ?", product.ID).Error)
	assert.Equal(t, 1, variant.Stock)
	assert.Equal(t, 2, variant.Sales)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, product.ID).Error)
	assert.Equal(t, 1, fresh.CountInStock)
	assert.Equal(t, 2, fresh.Sales)

	// Order snapshot carries authoritative catalog fields.
	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, "Linen Shirt", item.Name)
	assert.Equal(t, "linen-shirt", item.Slug)
	assert.Equal(t, "Velora", item.Brand)
	assert.Equal(t, "Shirts", item.CategoryName)
	assert.Equal(t, 31.50, item.Price)
	require.NotNil(t, item.VariantID)
	assert.Equal(t, variant.ID, *item.VariantID)
	assert.Equal(t, 1, item.VariantStock)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotZero(t, order.ShippingInfoID)

	// A second order for 2 against the now-1-stock variant fails and
	// reports the true availability.
	_, err = PlaceOrder(db, PlaceOrderRequest{
		Shipping: testShipping(),
		Items: []models.CartItem{
			{ProductID: product.ID, Quantity: 2, Selections: map[string]string{"Color": "red"}},
		},
	})
	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	require.Len(t, stockErr.Items, 1)
	assert.Equal(t, "Linen Shirt", stockErr.Items[0].ProductName)
	assert.Equal(t, 1, stockErr.Items[0].Available)
	assert.Contains(t, stockErr.Items[0].Message, "available: 1")
}

func TestPlaceOrder_SnapshotIgnoresClientDisplayFields(t *testing.T) {
	db := setupTestDB(t)
	product := seedVariantProduct(t, db, 3)

	order, err := PlaceOrder(db, PlaceOrderRequest{
		Shipping: testShipping(),
		Items: []models.CartItem{
			{
				ProductID:  product.ID,
				Quantity:   1,
				Selections: map[string]string{"Color": "red"},
				Name:       "Totally Free Shirt",
				Price:      0.01,
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Linen Shirt", order.Items[0].Name)
	assert.Equal(t, 31.50, order.Items[0].Price)
}

func TestPlaceOrder_VariantNotFound(t *testing.T) {
	db := setupTestDB(t)
	product := seedVariantProduct(t, db, 3)

	_, err := PlaceOrder(db, PlaceOrderRequest{
		Shipping: testShipping(),
		Items: []models.CartItem{
			{ProductID: product.ID, Quantity: 1, Selections: map[string]string{"Color": "green"}},
		},
	})

	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	require.Len(t, stockErr.Items, 1)
	assert.Equal(t, "variant not found", stockErr.Items[0].Message)

	// Nothing was written.
	var orders, shipping int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.ShippingInfo{}).Count(&shipping)
	assert.Zero(t, orders)
	assert.Zero(t, shipping)
}

func TestPlaceOrder_FailureMutatesNothing(t *testing.T) {
	db := setupTestDB(t)

	inStock := models.Product{Name: "Socks", Slug: "socks", Price: 5, CountInStock: 10}
	require.NoError(t, db.Create(&inStock).Error)
	short := seedVariantProduct(t, db, 1)

	// One valid item plus one shortfall: the whole order is rejected
	// and the valid item's product is untouched.
	_, err := PlaceOrder(db, PlaceOrderRequest{
		Shipping: testShipping(),
		Items: []models.CartItem{
			{ProductID: inStock.ID, Quantity: 4},
			{ProductID: short.ID, Quantity: 2, Selections: map[string]string{"Color": "red"}},
		},
	})

	var stockErr *StockError
	require.ErrorAs(t, err, &stockErr)
	require.Len(t, stockErr.Items, 1)
	assert.Equal(t, "Linen Shirt", stockErr.Items[0].ProductName)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, inStock.ID).Error)
	assert.Equal(t, 10, fresh.CountInStock)
	assert.Equal(t, 0, fresh.Sales)
}

func TestPlaceOrder_NonVariantProduct(t *testing.T) {
	db := setupTestDB(t)

	product := models.Product{Name: "Socks", Slug: "socks", Price: 5, CountInStock: 10}
	require.NoError(t, db.Create(&product).Error)

	order, err := PlaceOrder(db, PlaceOrderRequest{
		Shipping:   testShipping(),
		TotalPrice: 15,
		Items: []models.CartItem{
			{ProductID: product.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, order.Items[0].VariantID)
	assert.Equal(t, 5.0, order.Items[0].Price)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, product.ID).Error)
	assert.Equal(t, 7, fresh.CountInStock)
	assert.Equal(t, 3, fresh.Sales)
}

func TestPlaceOrder_MergesDuplicateLineItems(t *testing.T) {
	db := setupTestDB(t)
	product := seedVariantProduct(t, db, 5)

	order, err := PlaceOrder(db, PlaceOrderRequest{
		Shipping: testShipping(),
		Items: []models.CartItem{
			{ProductID: product.ID, Quantity: 2, Selections: map[string]string{"Color": "red"}},
			{ProductID: product.ID, Quantity: 1, Selections: map[string]string{"Color": "red"}},
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)

	var variant models.Variant
	require.NoError(t, db.First(&variant, "product_id = ?", product.ID).Error)
	assert.Equal(t, 2, variant.Stock)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	db := setupTestDB(t)

	_, err := PlaceOrder(db, PlaceOrderRequest{Shipping: testShipping()})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrder_UnknownProduct(t *testing.T) {
	db := setupTestDB(t)

	_, err := PlaceOrder(db, PlaceOrderRequest{
		Shipping: testShipping(),
		Items:    []models.CartItem{{ProductID: 999, Quantity: 1}},
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPlaceOrder_SequentialNumbers(t *testing.T) {
	db := setupTestDB(t)
	product := models.Product{Name: "Socks", Slug: "socks", Price: 5, CountInStock: 100}
	require.NoError(t, db.Create(&product).Error)

	prefix := fmt.Sprintf("%d-", time.Now().Year())
	for i := 1; i <= 3; i++ {
		order, err := PlaceOrder(db, PlaceOrderRequest{
			Shipping: testShipping(),
			Items:    []models.CartItem{{ProductID: product.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%s%05d", prefix, i), order.Number)
	}
}

func TestMatchVariant(t *testing.T) {
	product := &models.Product{
		Variants: []models.Variant{
			{ID: 1, Options: map[string]string{"Color": "red", "Size": "M"}},
			{ID: 2, Options: map[string]string{"Color": "red", "Size": "L"}},
		},
	}

	v := matchVariant(product, map[string]string{"Size": "L", "Color": "red"})
	require.NotNil(t, v)
	assert.Equal(t, uint(2), v.ID)

	// Partial selections must not match a bigger option set.
	assert.Nil(t, matchVariant(product, map[string]string{"Color": "red"}))
	// Extra selections must not match a smaller option set.
	assert.Nil(t, matchVariant(product, map[string]string{"Color": "red", "Size": "M", "Fit": "slim"}))
	assert.Nil(t, matchVariant(product, map[string]string{"Color": "blue", "Size": "M"}))
}
