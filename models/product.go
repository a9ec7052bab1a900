package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Slug         string  `gorm:"uniqueIndex;not null" json:"slug"`
	Brand        string  `json:"brand"`
	Description  string  `gorm:"type:text" json:"description"`
	Image        string  `json:"image"` // stored URL, upload happens elsewhere
	Price        float64 `gorm:"not null" json:"price"`
	ListPrice    float64 `json:"list_price"`
	CountInStock int     `json:"count_in_stock"`
	Sales        int     `json:"sales"`
	CategoryID   *uint   `gorm:"index" json:"category_id"`

	Category   *Category          `json:"category,omitempty"`
	Attributes []ProductAttribute `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"attributes"`
	Variants   []Variant          `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProductAttribute is one axis of variation offered by a product
// (e.g. attribute "Color", value "red"), optionally with its own
// swatch image and price adjustment.
type ProductAttribute struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   uint       `gorm:"index" json:"product_id"`
	AttributeID uint       `gorm:"not null" json:"attribute_id"`
	Attribute   *Attribute `json:"attribute,omitempty"`
	Value       string     `gorm:"not null" json:"value"`
	Image       string     `json:"image"`
	PriceDelta  float64    `json:"price_delta"`
}

// Variant is a concrete combination of attribute values with its own
// price, stock and sales counter. Options maps attribute name to the
// chosen value, e.g. {"Color": "red", "Size": "M"}.
type Variant struct {
	ID        uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint              `gorm:"index" json:"product_id"`
	Options   map[string]string `gorm:"type:jsonb;serializer:json" json:"options"`
	Price     float64           `json:"price"`
	Stock     int               `json:"stock"`
	Sales     int               `json:"sales"`
}

type Attribute struct {
	ID     uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string   `gorm:"uniqueIndex;not null" json:"name"`
	Values []string `gorm:"type:jsonb;serializer:json" json:"values"`
}

// AggregateStock returns the product-level stock: the sum of variant
// stocks when variants exist, otherwise the product's own stock field.
func (p *Product) AggregateStock() int {
	if len(p.Variants) == 0 {
		return p.CountInStock
	}
	sum := 0
	for _, v := range p.Variants {
		sum += v.Stock
	}
	return sum
}
