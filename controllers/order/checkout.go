package orderControllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/velora-store/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Request Structs --------

type ShippingForm struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type PlaceOrderRequest struct {
	UserID     string            `json:"user_id"`
	Shipping   ShippingForm      `json:"shipping" binding:"required"`
	Items      []models.CartItem `json:"items" binding:"required"`
	TotalPrice float64           `json:"total_price"`
}

// -------- Errors --------

var ErrEmptyCart = errors.New("cart is empty")

type StockShortfall struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
	Message     string `json:"message"`
}

// StockError rejects the whole order: every failing line item is
// listed and nothing has been written.
type StockError struct {
	Items []StockShortfall `json:"items"`
}

func (e *StockError) Error() string {
	if len(e.Items) == 1 {
		return "stock error: " + e.Items[0].ProductName + ": " + e.Items[0].Message
	}
	return fmt.Sprintf("stock error: %d items failed", len(e.Items))
}

// -------- Core Logic --------

// matchVariant finds the variant whose option set equals the submitted
// selections: same cardinality, every pair matched.
func matchVariant(p *models.Product, selections map[string]string) *models.Variant {
	for i := range p.Variants {
		v := &p.Variants[i]
		if len(v.Options) != len(selections) {
			continue
		}
		matched := true
		for name, value := range v.Options {
			if selections[name] != value {
				matched = false
				break
			}
		}
		if matched {
			return v
		}
	}
	return nil
}

// forUpdate takes a row lock on Postgres. The sqlite used in tests has
// a single writer and no FOR UPDATE syntax.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

type resolvedItem struct {
	item    models.CartItem
	product *models.Product
	variant *models.Variant // nil for non-variant products
}

// PlaceOrder merges and validates the submitted cart, then creates the
// order in a single transaction: stock decrements, sales counters, the
// shipping-info insert, order-number allocation and the order insert
// all commit or roll back together. Product rows are locked before
// validation, so two checkouts racing over the same low-stock variant
// serialize instead of both passing the stock check.
func PlaceOrder(db *gorm.DB, req PlaceOrderRequest) (*models.Order, error) {
	items := models.MergeCartItems(req.Items)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		resolved, err := resolveAndValidate(tx, items)
		if err != nil {
			return err
		}

		orderItems, err := applyStockDecrements(tx, resolved)
		if err != nil {
			return err
		}

		shipping := models.ShippingInfo{
			Name:       req.Shipping.Name,
			Phone:      req.Shipping.Phone,
			Email:      req.Shipping.Email,
			Address:    req.Shipping.Address,
			City:       req.Shipping.City,
			PostalCode: req.Shipping.PostalCode,
			Country:    req.Shipping.Country,
		}
		if err := tx.Create(&shipping).Error; err != nil {
			return fmt.Errorf("create shipping info: %w", err)
		}

		number, err := nextOrderNumber(tx, time.Now())
		if err != nil {
			return err
		}

		var userID *string
		if req.UserID != "" {
			userID = &req.UserID
		}

		order = models.Order{
			Number:         number,
			UserID:         userID,
			Items:          orderItems,
			TotalPrice:     req.TotalPrice,
			ShippingInfoID: shipping.ID,
			Status:         models.OrderStatusPending,
		}
		if err := tx.Omit("ShippingInfo").Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		order.ShippingInfo = shipping
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// resolveAndValidate loads every product once (locked for the rest of
// the transaction), matches variants and checks stock for all items
// before anything is mutated. Requested quantities accumulate against
// availability, so two line items draining the same variant are caught
// even though each alone would fit.
func resolveAndValidate(tx *gorm.DB, items []models.CartItem) ([]resolvedItem, error) {
	products := make(map[uint]*models.Product)
	reservedVariant := make(map[*models.Variant]int)
	reservedProduct := make(map[uint]int)

	resolved := make([]resolvedItem, 0, len(items))
	var stockErr StockError

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for product %d", item.Quantity, item.ProductID)
		}

		product, ok := products[item.ProductID]
		if !ok {
			var p models.Product
			if err := forUpdate(tx).Preload("Variants").Preload("Category").
				First(&p, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("product %d: %w", item.ProductID, gorm.ErrRecordNotFound)
				}
				return nil, err
			}
			product = &p
			products[item.ProductID] = product
		}

		var variant *models.Variant
		if len(product.Variants) > 0 {
			variant = matchVariant(product, item.Selections)
			if variant == nil {
				stockErr.Items = append(stockErr.Items, StockShortfall{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   item.Quantity,
					Message:     "variant not found",
				})
				continue
			}
			available := variant.Stock - reservedVariant[variant]
			if available < item.Quantity {
				stockErr.Items = append(stockErr.Items, StockShortfall{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   item.Quantity,
					Available:   available,
					Message:     fmt.Sprintf("insufficient stock, available: %d", available),
				})
				continue
			}
			reservedVariant[variant] += item.Quantity
		} else {
			available := product.CountInStock - reservedProduct[product.ID]
			if available < item.Quantity {
				stockErr.Items = append(stockErr.Items, StockShortfall{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   item.Quantity,
					Available:   available,
					Message:     fmt.Sprintf("insufficient stock, available: %d", available),
				})
				continue
			}
			reservedProduct[product.ID] += item.Quantity
		}

		resolved = append(resolved, resolvedItem{item: item, product: product, variant: variant})
	}

	if len(stockErr.Items) > 0 {
		return nil, &stockErr
	}
	return resolved, nil
}

// applyStockDecrements mutates stock and sales counters and builds the
// order-time snapshot items from the authoritative catalog rows.
func applyStockDecrements(tx *gorm.DB, resolved []resolvedItem) ([]models.OrderItem, error) {
	orderItems := make([]models.OrderItem, 0, len(resolved))

	for _, r := range resolved {
		p, v, qty := r.product, r.variant, r.item.Quantity

		price := p.Price
		if v != nil {
			if v.Price > 0 {
				price = v.Price
			}
			v.Stock -= qty
			if v.Stock < 0 {
				v.Stock = 0
			}
			v.Sales += qty
			if err := tx.Model(&models.Variant{}).Where("id = ?", v.ID).
				Updates(map[string]interface{}{
					"stock": v.Stock,
					"sales": gorm.Expr("sales + ?", qty),
				}).Error; err != nil {
				return nil, fmt.Errorf("update variant %d: %w", v.ID, err)
			}
		} else {
			p.CountInStock -= qty
			if p.CountInStock < 0 {
				p.CountInStock = 0
			}
		}

		// Recompute the aggregate and bump the product-level sales
		// counter (independent of the variant counter).
		p.CountInStock = p.AggregateStock()
		if err := tx.Model(&models.Product{}).Where("id = ?", p.ID).
			Updates(map[string]interface{}{
				"count_in_stock": p.CountInStock,
				"sales":          gorm.Expr("sales + ?", qty),
			}).Error; err != nil {
			return nil, fmt.Errorf("update product %d: %w", p.ID, err)
		}

		categoryName := ""
		if p.Category != nil {
			categoryName = p.Category.Name
		}

		item := models.OrderItem{
			ProductID:    p.ID,
			Name:         p.Name,
			Image:        p.Image,
			Slug:         p.Slug,
			CategoryName: categoryName,
			Brand:        p.Brand,
			Price:        price,
			Quantity:     qty,
			Selections:   r.item.Selections,
		}
		if v != nil {
			variantID := v.ID
			item.VariantID = &variantID
			item.VariantPrice = v.Price
			item.VariantStock = v.Stock
		}
		orderItems = append(orderItems, item)
	}
	return orderItems, nil
}
