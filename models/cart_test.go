package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeCartItems_SumsDuplicates(t *testing.T) {
	items := []CartItem{
		{ProductID: 1, Quantity: 2, Selections: map[string]string{"Color": "red", "Size": "M"}},
		{ProductID: 1, Quantity: 3, Selections: map[string]string{"Color": "red", "Size": "M"}},
	}

	merged := MergeCartItems(items)

	assert.Len(t, merged, 1)
	assert.Equal(t, 5, merged[0].Quantity)
	assert.Equal(t, uint(1), merged[0].ProductID)
}

func TestMergeCartItems_SelectionOrderInsensitive(t *testing.T) {
	// Maps have no order, but clients may serialize selections in any
	// order; the canonical key must not care.
	a := CartItem{ProductID: 7, Quantity: 1, Selections: map[string]string{"Size": "M", "Color": "red"}}
	b := CartItem{ProductID: 7, Quantity: 4, Selections: map[string]string{"Color": "red", "Size": "M"}}

	merged := MergeCartItems([]CartItem{a, b})

	assert.Len(t, merged, 1)
	assert.Equal(t, 5, merged[0].Quantity)
}

func TestMergeCartItems_DifferentSelectionsStaySeparate(t *testing.T) {
	items := []CartItem{
		{ProductID: 1, Quantity: 1, Selections: map[string]string{"Color": "red"}},
		{ProductID: 1, Quantity: 1, Selections: map[string]string{"Color": "blue"}},
		{ProductID: 2, Quantity: 1, Selections: map[string]string{"Color": "red"}},
	}

	merged := MergeCartItems(items)

	assert.Len(t, merged, 3)
}

func TestMergeCartItems_PreservesFirstOccurrenceOrder(t *testing.T) {
	items := []CartItem{
		{ProductID: 3, Quantity: 1},
		{ProductID: 1, Quantity: 1},
		{ProductID: 3, Quantity: 2},
	}

	merged := MergeCartItems(items)

	assert.Len(t, merged, 2)
	assert.Equal(t, uint(3), merged[0].ProductID)
	assert.Equal(t, 3, merged[0].Quantity)
	assert.Equal(t, uint(1), merged[1].ProductID)
}

func TestSelectionKey_EmptySelections(t *testing.T) {
	a := CartItem{ProductID: 1}
	b := CartItem{ProductID: 1, Selections: map[string]string{}}

	assert.Equal(t, a.SelectionKey(), b.SelectionKey())
}

func TestAggregateStock(t *testing.T) {
	noVariants := Product{CountInStock: 9}
	assert.Equal(t, 9, noVariants.AggregateStock())

	withVariants := Product{
		CountInStock: 1, // stale, must be ignored
		Variants: []Variant{
			{Stock: 3},
			{Stock: 4},
		},
	}
	assert.Equal(t, 7, withVariants.AggregateStock())
}
