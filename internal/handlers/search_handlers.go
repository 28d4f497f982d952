package handlers

import (
	"net/http"

	"github.com/bostany/storefront/internal/middleware"
	"github.com/bostany/storefront/internal/models"
	"github.com/bostany/storefront/internal/query"
	"github.com/gin-gonic/gin"
)

type suggestion struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	NameAr     string `json:"nameAr"`
	Image      string `json:"image"`
	Price      int64  `json:"price"`
	Bestseller bool   `json:"bestseller"`
}

// SearchSuggest is the handler for GET /v1/search/suggest?q=
// Keystrokes from one session are debounced: a request overtaken by a newer
// one before the debounce delay ends gets 204 No Content.
func (h *Handlers) SearchSuggest(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	text := c.Query("q")

	var results []models.Product
	done := sess.Search.Trigger(func() {
		results = query.Search(h.Catalog.AllProducts(), text)
	})

	select {
	case <-c.Request.Context().Done():
		return
	case ran := <-done:
		if !ran {
			c.Status(http.StatusNoContent)
			return
		}
	}

	total := len(results)
	if len(results) > query.MaxSuggestions {
		results = results[:query.MaxSuggestions]
	}
	out := make([]suggestion, 0, len(results))
	for _, p := range results {
		out = append(out, suggestion{
			ID:         p.ID,
			Slug:       p.Slug,
			Name:       p.Name,
			NameAr:     p.NameAr,
			Image:      p.PrimaryImage(),
			Price:      p.MinPrice(),
			Bestseller: p.HasBadge(models.BadgeBestseller),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"query":    text,
		"products": out,
		"total":    total,
	})
}
