package models

import "time"

type OrderStatus string

const (
	// Order statuses (typical storefront flow)
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting handling
	OrderStatusProcessing OrderStatus = "processing" // Being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled by staff
)

type Order struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Number string  `gorm:"uniqueIndex;not null" json:"number"` // human-readable, YYYY-NNNNN
	UserID *string `gorm:"index" json:"user_id"`

	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice float64     `json:"total_price"`

	ShippingInfoID uint         `json:"shipping_info_id"`
	ShippingInfo   ShippingInfo `json:"shipping_info"`

	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OrderItem is a snapshot of the product at order time; display fields
// are copied from the catalog, never from the client.
type OrderItem struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	OrderID      uint              `gorm:"index" json:"order_id"`
	ProductID    uint              `json:"product_id"`
	Name         string            `json:"name"`
	Image        string            `json:"image"`
	Slug         string            `json:"slug"`
	CategoryName string            `json:"category_name"`
	Brand        string            `json:"brand"`
	Price        float64           `json:"price"`
	Quantity     int               `json:"quantity"`
	Selections   map[string]string `gorm:"type:jsonb;serializer:json" json:"selections"`

	// Set only when the product resolved to a variant.
	VariantID    *uint   `json:"variant_id,omitempty"`
	VariantPrice float64 `json:"variant_price,omitempty"`
	VariantStock int     `json:"variant_stock,omitempty"` // remaining stock after this order
}

// OrderCounter backs order-number allocation: one row per year, bumped
// inside the order transaction so concurrent checkouts cannot collide.
type OrderCounter struct {
	Year int `gorm:"primaryKey"`
	Seq  int `gorm:"not null"`
}
