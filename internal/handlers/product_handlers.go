package handlers

import (
	"net/http"
	"strconv"

	"github.com/bostany/storefront/internal/models"
	"github.com/bostany/storefront/internal/query"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
	relatedLimit    = 4
)

// ListProducts is the handler for GET /v1/products
// It accepts the shop page URL parameters plus page and limit.
func (h *Handlers) ListProducts(c *gin.Context) {
	params := query.ParseParams(c.Request.URL.Query())
	h.respondWithProducts(c, h.Catalog.AllProducts(), params)
}

func (h *Handlers) respondWithProducts(c *gin.Context, base []models.Product, params query.Params) {
	page, limit := pagination(c)

	matched := query.Products(base, params)

	c.JSON(http.StatusOK, gin.H{
		"products":   query.Paginate(matched, page, limit),
		"total":      len(matched),
		"page":       page,
		"limit":      limit,
		"sort":       params.Sort,
		"hasFilters": params.HasFilters(),
		"query":      params.Encode().Encode(),
	})
}

func pagination(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// FeaturedProducts is the handler for GET /v1/products/featured
func (h *Handlers) FeaturedProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.Catalog.FeaturedProducts()})
}

// GetProduct is the handler for GET /v1/products/:slug
// Related products share the category and exclude the product itself.
func (h *Handlers) GetProduct(c *gin.Context) {
	p, ok := h.Catalog.ProductBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	related := make([]models.Product, 0, relatedLimit)
	for _, other := range h.Catalog.ProductsByCategory(p.Category.Slug) {
		if other.ID == p.ID {
			continue
		}
		related = append(related, other)
		if len(related) == relatedLimit {
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{"product": p, "related": related})
}
