// Package pricing holds the shipping, cash-on-delivery and promo arithmetic
// shared by the cart page and checkout. Amounts are whole Egyptian pounds.
package pricing

import (
	"errors"
	"strings"

	"github.com/bostany/storefront/internal/models"
	"github.com/shopspring/decimal"
)

const (
	DefaultFlatFee               int64 = 30
	DefaultFreeShippingThreshold int64 = 300
	DefaultCODFee                int64 = 10

	// PromoCode is the only promo code the shop accepts.
	PromoCode = "BOSTANY10"
)

var promoRate = decimal.NewFromInt(10).Div(decimal.NewFromInt(100))

// ErrInvalidPromo is returned for any code other than PromoCode. Its message
// is shown to the shopper as is.
var ErrInvalidPromo = errors.New("Invalid promo code. Try BOSTANY10")

// Rates are the configurable fees.
type Rates struct {
	FlatFee               int64
	FreeShippingThreshold int64
	CODFee                int64
}

func DefaultRates() Rates {
	return Rates{
		FlatFee:               DefaultFlatFee,
		FreeShippingThreshold: DefaultFreeShippingThreshold,
		CODFee:                DefaultCODFee,
	}
}

// Shipping is free once amount reaches the threshold.
func (r Rates) Shipping(amount int64) int64 {
	if amount >= r.FreeShippingThreshold {
		return 0
	}
	return r.FlatFee
}

// COD is charged only for cash on delivery.
func (r Rates) COD(method models.PaymentMethod) int64 {
	if method == models.PaymentCOD {
		return r.CODFee
	}
	return 0
}

// ValidatePromo normalizes code the way the promo input does (trimmed,
// upper-cased) and checks it.
func ValidatePromo(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code != PromoCode {
		return "", ErrInvalidPromo
	}
	return code, nil
}

// Discount is 10% of subtotal rounded up to a whole pound, so the
// discounted total never shows a fraction.
func Discount(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}
	return decimal.NewFromInt(subtotal).Mul(promoRate).Ceil().IntPart()
}

// CartSummary is the cart page order summary. Shipping there is only a
// hint; the fee itself is charged at checkout.
type CartSummary struct {
	Subtotal      int64  `json:"subtotal"`
	PromoCode     string `json:"promoCode,omitempty"`
	Discount      int64  `json:"discount"`
	Total         int64  `json:"total"`
	FreeShipping  bool   `json:"freeShipping"`
	AmountToFree  int64  `json:"amountToFreeShipping"`
	ProgressRatio int    `json:"freeShippingProgress"`
}

// Summarize builds the cart page summary. An empty promo means none applied.
func (r Rates) Summarize(subtotal int64, promo string) CartSummary {
	s := CartSummary{Subtotal: subtotal, PromoCode: promo}
	if promo != "" {
		s.Discount = Discount(subtotal)
	}
	s.Total = subtotal - s.Discount
	s.FreeShipping = s.Total >= r.FreeShippingThreshold
	if s.FreeShipping || r.FreeShippingThreshold <= 0 {
		s.ProgressRatio = 100
		return s
	}
	s.AmountToFree = r.FreeShippingThreshold - s.Total
	s.ProgressRatio = int(s.Total * 100 / r.FreeShippingThreshold)
	return s
}

// Breakdown is the checkout price breakdown.
type Breakdown struct {
	Subtotal    int64 `json:"subtotal"`
	ShippingFee int64 `json:"shippingFee"`
	CODFee      int64 `json:"codFee"`
	Total       int64 `json:"total"`
}

// Checkout prices an order. The cart promo does not carry over to checkout.
func (r Rates) Checkout(subtotal int64, method models.PaymentMethod) Breakdown {
	b := Breakdown{
		Subtotal:    subtotal,
		ShippingFee: r.Shipping(subtotal),
		CODFee:      r.COD(method),
	}
	b.Total = b.Subtotal + b.ShippingFee + b.CODFee
	return b
}
