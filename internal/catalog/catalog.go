package catalog

import "github.com/bostany/storefront/internal/models"

// Store is the read-only product catalog. It has no mutating operations, so a
// single instance is shared by every session without locking.
type Store struct {
	brands     []models.Brand
	categories []models.Category
	products   []models.Product // active products only, file order
	bySlug     map[string]int
	byID       map[string]int
}

func newStore(brands []models.Brand, categories []models.Category, all []models.Product) *Store {
	s := &Store{
		brands:     brands,
		categories: categories,
		bySlug:     map[string]int{},
		byID:       map[string]int{},
	}
	for _, p := range all {
		if !p.IsActive {
			continue
		}
		s.bySlug[p.Slug] = len(s.products)
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}
	return s
}

// AllProducts returns every active product in catalog order. The returned
// slice is a copy; callers may reorder it freely.
func (s *Store) AllProducts() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) ProductBySlug(slug string) (models.Product, bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return models.Product{}, false
	}
	return s.products[i], true
}

func (s *Store) ProductByID(id string) (models.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return s.products[i], true
}

func (s *Store) ProductsByCategory(categorySlug string) []models.Product {
	return s.filter(func(p models.Product) bool { return p.Category.Slug == categorySlug })
}

func (s *Store) ProductsByBrand(brandSlug string) []models.Product {
	return s.filter(func(p models.Product) bool { return p.Brand.Slug == brandSlug })
}

// FeaturedProducts returns products carrying at least one badge.
func (s *Store) FeaturedProducts() []models.Product {
	return s.filter(func(p models.Product) bool { return len(p.Badges) > 0 })
}

func (s *Store) filter(keep func(models.Product) bool) []models.Product {
	out := []models.Product{}
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) Categories() []models.Category {
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) CategoryBySlug(slug string) (models.Category, bool) {
	for _, c := range s.categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Category{}, false
}

func (s *Store) Brands() []models.Brand {
	out := make([]models.Brand, len(s.brands))
	copy(out, s.brands)
	return out
}

func (s *Store) BrandBySlug(slug string) (models.Brand, bool) {
	for _, b := range s.brands {
		if b.Slug == slug {
			return b, true
		}
	}
	return models.Brand{}, false
}

// CategoryCounts maps category slug to the number of active products in it.
func (s *Store) CategoryCounts() map[string]int {
	counts := map[string]int{}
	for _, p := range s.products {
		counts[p.Category.Slug]++
	}
	return counts
}

// BrandCounts maps brand slug to the number of active products it owns.
func (s *Store) BrandCounts() map[string]int {
	counts := map[string]int{}
	for _, p := range s.products {
		counts[p.Brand.Slug]++
	}
	return counts
}
