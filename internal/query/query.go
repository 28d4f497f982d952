// Package query filters, sorts and pages the catalog for the shop page and the
// search overlay. Every call is a full scan over the product slice it is given.
package query

import (
	"sort"
	"strings"

	"github.com/bostany/storefront/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOption is the value of the "sort" URL parameter.
type SortOption string

const (
	SortPopular   SortOption = "popular"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	// SortNewest reverses catalog order. The catalog has no timestamps, so
	// insertion order stands in for recency.
	SortNewest SortOption = "newest"
	// SortCatalog keeps products in the order they were given.
	SortCatalog SortOption = ""
)

func (s SortOption) Valid() bool {
	switch s {
	case SortPopular, SortPriceAsc, SortPriceDesc, SortNewest:
		return true
	}
	return false
}

// MaxSuggestions caps the search overlay result list.
const MaxSuggestions = 6

// Params are the shop page filters. Empty sets and nil bounds disable the
// corresponding filter.
type Params struct {
	Categories []string
	Brands     []string
	PriceMin   *float64
	PriceMax   *float64
	Search     string
	Sort       SortOption
}

// HasFilters reports whether any filter (not the sort) is active.
func (p Params) HasFilters() bool {
	return len(p.Categories) > 0 || len(p.Brands) > 0 || p.Search != "" || p.PriceMin != nil || p.PriceMax != nil
}

// Products applies p to all and returns a new, ordered slice. all is not modified.
func Products(all []models.Product, p Params) []models.Product {
	categories := toSet(p.Categories)
	brands := toSet(p.Brands)
	match := newMatcher(p.Search)

	out := make([]models.Product, 0, len(all))
	for _, prod := range all {
		if len(categories) > 0 && !categories[prod.Category.Slug] {
			continue
		}
		if len(brands) > 0 && !brands[prod.Brand.Slug] {
			continue
		}
		if !match(prod) {
			continue
		}
		price := float64(prod.MinPrice())
		if p.PriceMin != nil && price < *p.PriceMin {
			continue
		}
		if p.PriceMax != nil && price > *p.PriceMax {
			continue
		}
		out = append(out, prod)
	}

	sortProducts(out, p.Sort)
	return out
}

// Search is the header search: an empty or blank text yields no results
// rather than the whole catalog.
func Search(all []models.Product, text string) []models.Product {
	if strings.TrimSpace(text) == "" {
		return []models.Product{}
	}
	return Products(all, Params{Search: text, Sort: SortCatalog})
}

// Paginate returns the 1-based page of size items. A non-positive size
// returns everything.
func Paginate(products []models.Product, page, size int) []models.Product {
	if size <= 0 {
		return products
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + size
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

func newMatcher(text string) func(models.Product) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return func(models.Product) bool { return true }
	}
	fold := cases.Fold()
	needle := fold.String(text)
	contains := func(s string) bool { return strings.Contains(fold.String(s), needle) }

	return func(p models.Product) bool {
		if contains(p.Name) || contains(p.Description) || contains(p.Brand.Name) || contains(p.Category.Name) {
			return true
		}
		// Arabic has no letter case; match the raw text.
		if strings.Contains(p.NameAr, text) {
			return true
		}
		for _, f := range p.Features {
			if contains(f) {
				return true
			}
		}
		return false
	}
}

func sortProducts(products []models.Product, by SortOption) {
	switch by {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].MinPrice() < products[j].MinPrice()
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].MinPrice() > products[j].MinPrice()
		})
	case SortNewest:
		for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
			products[i], products[j] = products[j], products[i]
		}
	case SortPopular:
		coll := collate.New(language.English)
		sort.SliceStable(products, func(i, j int) bool {
			a, b := products[i], products[j]
			if len(a.Badges) != len(b.Badges) {
				return len(a.Badges) > len(b.Badges)
			}
			return coll.CompareString(a.Name, b.Name) < 0
		})
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
