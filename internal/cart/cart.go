// Package cart is the per-session shopping cart. A Store is not safe for
// concurrent use; the owning session serializes access.
package cart

import (
	"errors"
	"fmt"

	"github.com/bostany/storefront/internal/models"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrVariantMismatch = errors.New("variant does not belong to product")
)

// Store holds cart lines in insertion order. Totals are computed on every
// read from the lines themselves.
type Store struct {
	items []models.CartItem
}

func New() *Store {
	return &Store{}
}

// AddItem merges into the existing (product, variant) line or appends a new one.
func (s *Store) AddItem(product models.Product, variant models.ProductVariant, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("add %s/%s: %w", product.ID, variant.ID, ErrInvalidQuantity)
	}
	if _, ok := product.Variant(variant.ID); !ok {
		return fmt.Errorf("add %s/%s: %w", product.ID, variant.ID, ErrVariantMismatch)
	}

	if i := s.index(product.ID, variant.ID); i >= 0 {
		s.items[i].Quantity += quantity
		return nil
	}
	s.items = append(s.items, models.CartItem{Product: product, Variant: variant, Quantity: quantity})
	return nil
}

// RemoveItem deletes the line if present.
func (s *Store) RemoveItem(productID, variantID string) {
	i := s.index(productID, variantID)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// UpdateQuantity sets the line quantity. Zero or less removes the line.
// It reports whether the line exists afterwards.
func (s *Store) UpdateQuantity(productID, variantID string, quantity int) bool {
	if quantity <= 0 {
		s.RemoveItem(productID, variantID)
		return false
	}
	i := s.index(productID, variantID)
	if i < 0 {
		return false
	}
	s.items[i].Quantity = quantity
	return true
}

func (s *Store) Clear() {
	s.items = nil
}

// Items returns a copy of the lines.
func (s *Store) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Item returns the line for (productID, variantID).
func (s *Store) Item(productID, variantID string) (models.CartItem, bool) {
	i := s.index(productID, variantID)
	if i < 0 {
		return models.CartItem{}, false
	}
	return s.items[i], true
}

func (s *Store) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Store) TotalItems() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

func (s *Store) Subtotal() int64 {
	var total int64
	for _, item := range s.items {
		total += item.LineTotal()
	}
	return total
}

func (s *Store) index(productID, variantID string) int {
	for i, item := range s.items {
		if item.Product.ID == productID && item.Variant.ID == variantID {
			return i
		}
	}
	return -1
}
