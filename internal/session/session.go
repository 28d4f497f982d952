// Package session keeps one shopper's cart, wishlist, checkout and search
// state together and serializes access to it.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/bostany/storefront/internal/cart"
	"github.com/bostany/storefront/internal/checkout"
	"github.com/bostany/storefront/internal/models"
	"github.com/bostany/storefront/internal/pricing"
	"github.com/bostany/storefront/internal/query"
	"github.com/bostany/storefront/internal/wishlist"
)

// Session is one browser's storefront state. Callers hold Lock while they
// touch Cart, Wishlist or the checkout. Search is safe without the lock.
type Session struct {
	ID       string
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Search   *query.Debouncer

	mu               sync.Mutex
	opts             Options
	checkout         *checkout.Machine
	promo            string
	lastConfirmation *models.OrderConfirmation
	lastSeen         time.Time
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// ApplyPromo validates and applies a cart promo code. An invalid code
// removes any promo already applied.
func (s *Session) ApplyPromo(code string) error {
	normalized, err := pricing.ValidatePromo(code)
	if err != nil {
		s.promo = ""
		return err
	}
	s.promo = normalized
	return nil
}

func (s *Session) RemovePromo() {
	s.promo = ""
}

func (s *Session) Promo() string {
	return s.promo
}

// CartSummary is the cart page summary for the current cart and promo.
func (s *Session) CartSummary() pricing.CartSummary {
	return s.opts.Checkout.Rates.Summarize(s.Cart.Subtotal(), s.promo)
}

// Checkout returns the checkout for the current cart. Once an order has been
// placed, refilling the cart starts a fresh checkout.
func (s *Session) Checkout() *checkout.Machine {
	if s.checkout == nil || (s.checkout.Placed() && !s.Cart.IsEmpty()) {
		s.checkout = checkout.New(s.Cart, s.opts.Checkout)
	}
	return s.checkout
}

// PlaceOrder places the order and remembers its confirmation.
func (s *Session) PlaceOrder(ctx context.Context) (models.OrderConfirmation, error) {
	conf, err := s.Checkout().PlaceOrder(ctx)
	if err != nil {
		return conf, err
	}
	s.lastConfirmation = &conf
	s.promo = ""
	return conf, nil
}

// LastConfirmation is the most recent order placed in this session.
func (s *Session) LastConfirmation() (models.OrderConfirmation, bool) {
	if s.lastConfirmation == nil {
		return models.OrderConfirmation{}, false
	}
	return *s.lastConfirmation, true
}
