package models

import (
	"sort"
	"strings"
	"time"
)

// Cart is client-authoritative state: guests keep it in Redis between
// visits, and checkout accepts it in the request body either way.
type Cart struct {
	GuestID   string     `json:"guest_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ProductID  uint              `json:"product_id"`
	Quantity   int               `json:"quantity"`
	Selections map[string]string `json:"selections"` // attribute name -> chosen value

	// Display-only fields echoed by the storefront UI. Checkout ignores
	// them and snapshots authoritative values from the catalog.
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

// SelectionKey canonicalizes the attribute selections so that equal
// selection sets compare equal regardless of submission order.
func (i CartItem) SelectionKey() string {
	keys := make([]string, 0, len(i.Selections))
	for k := range i.Selections {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(i.Selections[k])
		b.WriteByte(';')
	}
	return b.String()
}

// MergeCartItems combines entries referring to the same product with
// the same selection set into one item with the summed quantity.
// Relative order of first occurrences is preserved.
func MergeCartItems(items []CartItem) []CartItem {
	type key struct {
		productID uint
		selection string
	}
	index := make(map[key]int, len(items))
	merged := make([]CartItem, 0, len(items))

	for _, item := range items {
		k := key{item.ProductID, item.SelectionKey()}
		if pos, ok := index[k]; ok {
			merged[pos].Quantity += item.Quantity
			continue
		}
		index[k] = len(merged)
		merged = append(merged, item)
	}
	return merged
}
