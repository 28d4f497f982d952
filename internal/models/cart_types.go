package models

// CartItem is one cart line. Product and Variant are snapshots taken when the
// line was created; (Product.ID, Variant.ID) is the line's key.
type CartItem struct {
	Product  Product        `json:"product"`
	Variant  ProductVariant `json:"variant"`
	Quantity int            `json:"quantity"`
}

// LineTotal is the variant price times the quantity.
func (i CartItem) LineTotal() int64 {
	return i.Variant.Price * int64(i.Quantity)
}
