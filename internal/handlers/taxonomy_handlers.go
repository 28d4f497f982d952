package handlers

import (
	"net/http"

	"github.com/bostany/storefront/internal/models"
	"github.com/bostany/storefront/internal/query"
	"github.com/gin-gonic/gin"
)

type categoryResponse struct {
	models.Category
	ProductCount int `json:"productCount"`
}

type brandResponse struct {
	models.Brand
	ProductCount int `json:"productCount"`
}

// GetAllCategories is the handler for GET /v1/categories
func (h *Handlers) GetAllCategories(c *gin.Context) {
	counts := h.Catalog.CategoryCounts()
	out := make([]categoryResponse, 0, len(counts))
	for _, cat := range h.Catalog.Categories() {
		out = append(out, categoryResponse{Category: cat, ProductCount: counts[cat.Slug]})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// GetAllBrands is the handler for GET /v1/brands
func (h *Handlers) GetAllBrands(c *gin.Context) {
	counts := h.Catalog.BrandCounts()
	out := make([]brandResponse, 0, len(counts))
	for _, b := range h.Catalog.Brands() {
		out = append(out, brandResponse{Brand: b, ProductCount: counts[b.Slug]})
	}
	c.JSON(http.StatusOK, gin.H{"brands": out})
}

// CategoryProducts is the handler for GET /v1/categories/:slug/products
// The category in the path replaces any category query parameter. Without a
// sort parameter products keep catalog order.
func (h *Handlers) CategoryProducts(c *gin.Context) {
	slug := c.Param("slug")
	if _, ok := h.Catalog.CategoryBySlug(slug); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	params := taxonomyParams(c)
	params.Categories = []string{slug}
	h.respondWithProducts(c, h.Catalog.ProductsByCategory(slug), params)
}

// BrandProducts is the handler for GET /v1/brands/:slug/products
func (h *Handlers) BrandProducts(c *gin.Context) {
	slug := c.Param("slug")
	if _, ok := h.Catalog.BrandBySlug(slug); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
		return
	}
	params := taxonomyParams(c)
	params.Brands = []string{slug}
	h.respondWithProducts(c, h.Catalog.ProductsByBrand(slug), params)
}

func taxonomyParams(c *gin.Context) query.Params {
	params := query.ParseParams(c.Request.URL.Query())
	if c.Query(query.ParamSort) == "" {
		params.Sort = query.SortCatalog
	}
	return params
}
