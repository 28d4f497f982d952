package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bostany/storefront/internal/cart"
	"github.com/bostany/storefront/internal/models"
	"github.com/bostany/storefront/internal/pricing"
	"github.com/bostany/storefront/internal/session"
	"github.com/gin-gonic/gin"
)

type cartResponse struct {
	Items      []models.CartItem   `json:"items"`
	TotalItems int                 `json:"totalItems"`
	Subtotal   int64               `json:"subtotal"`
	Summary    pricing.CartSummary `json:"summary"`
}

func cartView(sess *session.Session) cartResponse {
	return cartResponse{
		Items:      sess.Cart.Items(),
		TotalItems: sess.Cart.TotalItems(),
		Subtotal:   sess.Cart.Subtotal(),
		Summary:    sess.CartSummary(),
	}
}

// GetCart is the handler for GET /v1/cart
func (h *Handlers) GetCart(c *gin.Context) {
	sess := lockedSession(c)
	defer sess.Unlock()

	c.JSON(http.StatusOK, gin.H{"cart": cartView(sess)})
}

// AddToCartInput defines the JSON for adding an item to the cart.
// An empty variantId picks the product's first variant; quantity defaults to 1.
type AddToCartInput struct {
	ProductID string `json:"productId" binding:"required"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity" binding:"omitempty,gte=1"`
}

// AddToCart is the handler for POST /v1/cart/items
func (h *Handlers) AddToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	// 1. --- Resolve product and variant ---
	product, ok := h.Catalog.ProductByID(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	variant := product.Variants[0]
	if input.VariantID != "" {
		if variant, ok = product.Variant(input.VariantID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Variant not found"})
			return
		}
	}
	if !variant.InStock {
		c.JSON(http.StatusConflict, gin.H{"error": "This size is out of stock"})
		return
	}

	sess := lockedSession(c)
	defer sess.Unlock()

	// 2. --- Enforce the per-line cap ---
	existing, _ := sess.Cart.Item(product.ID, variant.ID)
	if input.Quantity > MaxQuantity-existing.Quantity {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("You can add at most %d of each item", MaxQuantity)})
		return
	}

	// 3. --- Add ---
	if err := sess.Cart.AddItem(product, variant, input.Quantity); err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) || errors.Is(err, cart.ErrVariantMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart", "cart": cartView(sess)})
}

type UpdateCartItemInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateCartItem is the handler for PUT /v1/cart/items/:product_id/:variant_id
// A quantity of 0 or less removes the line.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	productID, variantID := c.Param("product_id"), c.Param("variant_id")

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *input.Quantity > MaxQuantity {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("You can add at most %d of each item", MaxQuantity)})
		return
	}

	sess := lockedSession(c)
	defer sess.Unlock()

	if _, ok := sess.Cart.Item(productID, variantID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	}
	sess.Cart.UpdateQuantity(productID, variantID, *input.Quantity)

	c.JSON(http.StatusOK, gin.H{"message": "Cart item quantity updated", "cart": cartView(sess)})
}

// DeleteCartItem is the handler for DELETE /v1/cart/items/:product_id/:variant_id
// Removing a line that is not there is not an error.
func (h *Handlers) DeleteCartItem(c *gin.Context) {
	sess := lockedSession(c)
	defer sess.Unlock()

	sess.Cart.RemoveItem(c.Param("product_id"), c.Param("variant_id"))
	c.JSON(http.StatusOK, gin.H{"message": "Cart item removed", "cart": cartView(sess)})
}

// ClearCart is the handler for DELETE /v1/cart
func (h *Handlers) ClearCart(c *gin.Context) {
	sess := lockedSession(c)
	defer sess.Unlock()

	sess.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared", "cart": cartView(sess)})
}

type ApplyPromoInput struct {
	Code string `json:"code" binding:"required"`
}

// ApplyPromo is the handler for POST /v1/cart/promo
func (h *Handlers) ApplyPromo(c *gin.Context) {
	var input ApplyPromoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := lockedSession(c)
	defer sess.Unlock()

	if err := sess.ApplyPromo(input.Code); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "cart": cartView(sess)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promo code applied", "cart": cartView(sess)})
}

// RemovePromo is the handler for DELETE /v1/cart/promo
func (h *Handlers) RemovePromo(c *gin.Context) {
	sess := lockedSession(c)
	defer sess.Unlock()

	sess.RemovePromo()
	c.JSON(http.StatusOK, gin.H{"message": "Promo code removed", "cart": cartView(sess)})
}
