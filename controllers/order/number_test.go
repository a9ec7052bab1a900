package orderControllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velora-store/storefront-api/models"
)

func TestNextOrderNumber_StartsAtOne(t *testing.T) {
	db := setupTestDB(t)
	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	first, err := nextOrderNumber(db, at)
	require.NoError(t, err)
	assert.Equal(t, "2025-00001", first)

	second, err := nextOrderNumber(db, at)
	require.NoError(t, err)
	assert.Equal(t, "2025-00002", second)
}

func TestNextOrderNumber_SeedsFromExistingOrders(t *testing.T) {
	db := setupTestDB(t)

	shipping := models.ShippingInfo{Name: "Jane", Phone: "555", Email: "j@e.com", Address: "1 Main St"}
	require.NoError(t, db.Create(&shipping).Error)
	require.NoError(t, db.Create(&models.Order{
		Number:         "2025-00417",
		ShippingInfoID: shipping.ID,
		Status:         models.OrderStatusPending,
	}).Error)

	number, err := nextOrderNumber(db, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2025-00418", number)
}

func TestNextOrderNumber_ResetsEachYear(t *testing.T) {
	db := setupTestDB(t)

	_, err := nextOrderNumber(db, time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	number, err := nextOrderNumber(db, time.Date(2026, 1, 1, 1, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2026-00001", number)
}

func TestNextOrderNumber_IgnoresMalformedNumbers(t *testing.T) {
	db := setupTestDB(t)

	shipping := models.ShippingInfo{Name: "Jane", Phone: "555", Email: "j@e.com", Address: "1 Main St"}
	require.NoError(t, db.Create(&shipping).Error)
	require.NoError(t, db.Create(&models.Order{
		Number:         "2025-legacy",
		ShippingInfoID: shipping.ID,
		Status:         models.OrderStatusPending,
	}).Error)

	number, err := nextOrderNumber(db, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2025-00001", number)
}

func TestOrderNumberPattern(t *testing.T) {
	assert.True(t, orderNumberPattern.MatchString("2025-00001"))
	assert.False(t, orderNumberPattern.MatchString("2025-1"))
	assert.False(t, orderNumberPattern.MatchString("25-00001"))
	assert.False(t, orderNumberPattern.MatchString("2025-000001"))
}
