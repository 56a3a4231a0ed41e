package models

import (
	"errors"

	"github.com/swagshop/ecommerce/internal/catalog"
)

// Domain errors for cart operations
var (
	ErrProductNotInCatalog = errors.New("product is not in the catalog")
	ErrProductAlreadyAdded = errors.New("product is already in the cart")
	ErrProductNotInCart    = errors.New("product is not in the cart")
)

// Cart holds the products a shopper has picked, in the order they were
// added. Each catalog product can be in the cart at most once.
type Cart struct {
	items []catalog.Product
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// Add puts the product with the given slug into the cart
func (c *Cart) Add(slug string) error {
	product, ok := catalog.BySlug(slug)
	if !ok {
		return ErrProductNotInCatalog
	}
	if c.Contains(slug) {
		return ErrProductAlreadyAdded
	}

	c.items = append(c.items, product)
	return nil
}

// Remove takes the product with the given slug out of the cart
func (c *Cart) Remove(slug string) error {
	for i, item := range c.items {
		if item.Slug == slug {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrProductNotInCart
}

// Contains reports whether the product is currently in the cart
func (c *Cart) Contains(slug string) bool {
	for _, item := range c.items {
		if item.Slug == slug {
			return true
		}
	}
	return false
}

// Items returns a copy of the cart contents in insertion order. A cart
// with no items returns an empty slice, never nil.
func (c *Cart) Items() []catalog.Product {
	items := make([]catalog.Product, len(c.items))
	copy(items, c.items)
	return items
}

// Count returns the number of items in the cart
func (c *Cart) Count() int {
	return len(c.items)
}

// TotalCents returns the sum of all item prices
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, item := range c.items {
		total += item.PriceCents
	}
	return total
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.items = nil
}
