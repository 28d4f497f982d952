package handlers

import (
	"net/http"

	"github.com/bostany/storefront/internal/session"
	"github.com/gin-gonic/gin"
)

func wishlistView(sess *session.Session) gin.H {
	return gin.H{
		"items":      sess.Wishlist.Items(),
		"totalItems": sess.Wishlist.TotalItems(),
	}
}

// GetWishlist is the handler for GET /v1/wishlist
func (h *Handlers) GetWishlist(c *gin.Context) {
	sess := lockedSession(c)
	defer sess.Unlock()

	c.JSON(http.StatusOK, gin.H{"wishlist": wishlistView(sess)})
}

type WishlistItemInput struct {
	ProductID string `json:"productId" binding:"required"`
}

// AddToWishlist is the handler for POST /v1/wishlist/items
func (h *Handlers) AddToWishlist(c *gin.Context) {
	var input WishlistItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, ok := h.Catalog.ProductByID(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	sess := lockedSession(c)
	defer sess.Unlock()

	sess.Wishlist.AddItem(c.Request.Context(), product)
	c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist", "wishlist": wishlistView(sess)})
}

// RemoveFromWishlist is the handler for DELETE /v1/wishlist/items/:product_id
func (h *Handlers) RemoveFromWishlist(c *gin.Context) {
	sess := lockedSession(c)
	defer sess.Unlock()

	sess.Wishlist.RemoveItem(c.Request.Context(), c.Param("product_id"))
	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist", "wishlist": wishlistView(sess)})
}

// ToggleWishlist is the handler for POST /v1/wishlist/toggle
func (h *Handlers) ToggleWishlist(c *gin.Context) {
	var input WishlistItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, ok := h.Catalog.ProductByID(input.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	sess := lockedSession(c)
	defer sess.Unlock()

	wishlisted := sess.Wishlist.ToggleItem(c.Request.Context(), product)
	c.JSON(http.StatusOK, gin.H{"wishlisted": wishlisted, "wishlist": wishlistView(sess)})
}
