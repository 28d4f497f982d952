package models

import "time"

// PaymentMethod is one of the fixed checkout payment options.
type PaymentMethod string

const (
	PaymentCOD          PaymentMethod = "cod"
	PaymentCardDelivery PaymentMethod = "card_delivery"
	PaymentOnline       PaymentMethod = "online"
	PaymentWallet       PaymentMethod = "wallet"
)

// PaymentMethods lists the accepted methods in display order.
var PaymentMethods = []PaymentMethod{PaymentCOD, PaymentCardDelivery, PaymentOnline, PaymentWallet}

// Valid reports whether m is one of PaymentMethods.
func (m PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// DeliveryForm is the checkout step 1 form. Email, Landmark and Notes are optional.
type DeliveryForm struct {
	FullName      string `json:"fullName" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email"`
	Governorate   string `json:"governorate" validate:"required"`
	City          string `json:"city" validate:"required"`
	StreetAddress string `json:"streetAddress" validate:"required"`
	Building      string `json:"building" validate:"required"`
	Landmark      string `json:"landmark"`
	Notes         string `json:"notes"`
}

// OrderConfirmation is what the shopper sees after a successful order. It is
// not persisted anywhere.
type OrderConfirmation struct {
	ID            string        `json:"id"`
	OrderNumber   string        `json:"orderNumber"`
	Items         []CartItem    `json:"items"`
	Delivery      DeliveryForm  `json:"delivery"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Subtotal      int64         `json:"subtotal"`
	ShippingFee   int64         `json:"shippingFee"`
	CODFee        int64         `json:"codFee"`
	Total         int64         `json:"total"`
	PlacedAt      time.Time     `json:"placedAt"`
}
