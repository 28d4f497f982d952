package models

import "fmt"

// FormatPrice renders an amount the way the storefront displays prices.
func FormatPrice(amount int64) string {
	return fmt.Sprintf("EGP %d.00", amount)
}
