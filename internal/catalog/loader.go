package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/bostany/storefront/internal/models"
	"github.com/goccy/go-yaml"
	"github.com/gosimple/slug"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// ErrInvalidCatalog wraps every data problem found while loading.
var ErrInvalidCatalog = errors.New("invalid catalog")

// document mirrors the YAML file. Products name their brand and category by
// slug; Load resolves them into embedded copies.
type document struct {
	Brands     []models.Brand    `yaml:"brands"`
	Categories []models.Category `yaml:"categories"`
	Products   []productRecord   `yaml:"products"`
}

type productRecord struct {
	ID            string                  `yaml:"id"`
	Slug          string                  `yaml:"slug"`
	Name          string                  `yaml:"name"`
	NameAr        string                  `yaml:"nameAr"`
	Description   string                  `yaml:"description"`
	DescriptionAr string                  `yaml:"descriptionAr"`
	Brand         string                  `yaml:"brand"`
	Category      string                  `yaml:"category"`
	Images        []string                `yaml:"images"`
	Variants      []models.ProductVariant `yaml:"variants"`
	Badges        []models.Badge          `yaml:"badges"`
	Features      []string                `yaml:"features"`
	Nutrition     *models.NutritionalInfo `yaml:"nutritionalInfo"`
	IsActive      bool                    `yaml:"isActive"`
}

// Default builds the store from the catalog compiled into the binary.
func Default() (*Store, error) {
	return Load(defaultCatalog)
}

// LoadFile builds the store from a YAML file on disk.
func LoadFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Load(raw)
}

// Load parses and validates a YAML catalog document.
func Load(raw []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	brands := make(map[string]models.Brand, len(doc.Brands))
	for _, b := range doc.Brands {
		if !slug.IsSlug(b.Slug) {
			return nil, fmt.Errorf("%w: brand %q has a non URL-safe slug %q", ErrInvalidCatalog, b.ID, b.Slug)
		}
		if _, dup := brands[b.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate brand slug %q", ErrInvalidCatalog, b.Slug)
		}
		brands[b.Slug] = b
	}

	categories := make(map[string]models.Category, len(doc.Categories))
	for _, c := range doc.Categories {
		if !slug.IsSlug(c.Slug) {
			return nil, fmt.Errorf("%w: category %q has a non URL-safe slug %q", ErrInvalidCatalog, c.ID, c.Slug)
		}
		if _, dup := categories[c.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate category slug %q", ErrInvalidCatalog, c.Slug)
		}
		categories[c.Slug] = c
	}

	products := make([]models.Product, 0, len(doc.Products))
	seenIDs := map[string]bool{}
	seenSlugs := map[string]bool{}
	seenVariants := map[string]bool{}
	for _, rec := range doc.Products {
		if rec.ID == "" {
			return nil, fmt.Errorf("%w: product without id", ErrInvalidCatalog)
		}
		if seenIDs[rec.ID] {
			return nil, fmt.Errorf("%w: duplicate product id %q", ErrInvalidCatalog, rec.ID)
		}
		seenIDs[rec.ID] = true

		if !slug.IsSlug(rec.Slug) {
			return nil, fmt.Errorf("%w: product %q has a non URL-safe slug %q", ErrInvalidCatalog, rec.ID, rec.Slug)
		}
		if seenSlugs[rec.Slug] {
			return nil, fmt.Errorf("%w: duplicate product slug %q", ErrInvalidCatalog, rec.Slug)
		}
		seenSlugs[rec.Slug] = true

		brand, ok := brands[rec.Brand]
		if !ok {
			return nil, fmt.Errorf("%w: product %q references unknown brand %q", ErrInvalidCatalog, rec.ID, rec.Brand)
		}
		category, ok := categories[rec.Category]
		if !ok {
			return nil, fmt.Errorf("%w: product %q references unknown category %q", ErrInvalidCatalog, rec.ID, rec.Category)
		}

		if err := checkVariants(rec, seenVariants); err != nil {
			return nil, err
		}

		products = append(products, models.Product{
			ID:            rec.ID,
			Slug:          rec.Slug,
			Name:          rec.Name,
			NameAr:        rec.NameAr,
			Description:   rec.Description,
			DescriptionAr: rec.DescriptionAr,
			Brand:         brand,
			Category:      category,
			Images:        nonNil(rec.Images),
			Variants:      rec.Variants,
			Badges:        nonNilBadges(rec.Badges),
			Features:      nonNil(rec.Features),
			Nutrition:     rec.Nutrition,
			IsActive:      rec.IsActive,
		})
	}

	return newStore(doc.Brands, doc.Categories, products), nil
}

func checkVariants(rec productRecord, seen map[string]bool) error {
	if len(rec.Variants) == 0 {
		return fmt.Errorf("%w: product %q has no variants", ErrInvalidCatalog, rec.ID)
	}
	sellable := false
	for _, v := range rec.Variants {
		if v.ID == "" || seen[v.ID] {
			return fmt.Errorf("%w: product %q has a missing or duplicate variant id %q", ErrInvalidCatalog, rec.ID, v.ID)
		}
		seen[v.ID] = true
		if v.Price < 0 {
			return fmt.Errorf("%w: variant %q has a negative price", ErrInvalidCatalog, v.ID)
		}
		if v.CompareAtPrice != nil && *v.CompareAtPrice < v.Price {
			return fmt.Errorf("%w: variant %q compare-at price is below its price", ErrInvalidCatalog, v.ID)
		}
		if v.Price > 0 {
			sellable = true
		}
	}
	if rec.IsActive && !sellable {
		return fmt.Errorf("%w: active product %q has no variant with a positive price", ErrInvalidCatalog, rec.ID)
	}
	return nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func nonNilBadges(in []models.Badge) []models.Badge {
	if in == nil {
		return []models.Badge{}
	}
	return in
}
