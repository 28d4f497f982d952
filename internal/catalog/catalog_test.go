package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	all := store.AllProducts()
	require.Len(t, all, 28)
	assert.Equal(t, "tuna-001", all[0].ID)
	assert.Equal(t, "syr-008", all[len(all)-1].ID)

	for _, p := range all {
		assert.True(t, p.IsActive)
		assert.NotEmpty(t, p.Variants, p.ID)
		assert.Positive(t, p.MinPrice(), p.ID)
		assert.NotEmpty(t, p.Brand.Name, p.ID)
		assert.NotEmpty(t, p.Category.Name, p.ID)
	}
}

func TestAllProductsReturnsCopy(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	first := store.AllProducts()
	first[0], first[1] = first[1], first[0]

	again := store.AllProducts()
	assert.Equal(t, "tuna-001", again[0].ID)
}

func TestProductLookups(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	p, ok := store.ProductBySlug("spicy-tuna-chunks")
	require.True(t, ok)
	assert.Equal(t, "tuna-002", p.ID)
	assert.Equal(t, int64(42), p.Variants[0].Price)
	assert.Equal(t, "bostany", p.Brand.Slug)
	assert.Equal(t, "tuna", p.Category.Slug)

	_, ok = store.ProductBySlug("does-not-exist")
	assert.False(t, ok)

	p, ok = store.ProductByID("cof-002")
	require.True(t, ok)
	assert.Equal(t, "gold-instant-coffee", p.Slug)
}

func TestProductsByReference(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	coffee := store.ProductsByCategory("coffee")
	require.Len(t, coffee, 2)
	assert.Equal(t, "cof-001", coffee[0].ID)
	assert.Equal(t, "cof-002", coffee[1].ID)

	manutti := store.ProductsByBrand("manutti")
	assert.Len(t, manutti, 8)
	for _, p := range manutti {
		assert.Equal(t, "syrups", p.Category.Slug)
	}

	assert.Empty(t, store.ProductsByCategory("nope"))
}

func TestFeaturedProducts(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	var ids []string
	for _, p := range store.FeaturedProducts() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"tuna-002", "oil-002", "cof-002", "juice-004", "syr-006", "syr-007"}, ids)
}

func TestCounts(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)

	cats := store.CategoryCounts()
	assert.Equal(t, 6, cats["cheese-dairy"])
	assert.Equal(t, 8, cats["syrups"])
	assert.Equal(t, 1, cats["rice-bran-oil"])

	brands := store.BrandCounts()
	assert.Equal(t, 1, brands["king"])
	assert.Equal(t, 0, brands["unknown"])

	_, ok := store.CategoryBySlug("juices")
	assert.True(t, ok)
	_, ok = store.BrandBySlug("delice")
	assert.True(t, ok)
}

const validHeader = `
brands:
  - {id: acme, name: Acme, slug: acme}
categories:
  - {id: snacks, name: Snacks, slug: snacks}
`

func TestInactiveProductsAreHidden(t *testing.T) {
	store, err := Load([]byte(validHeader + `
products:
  - id: p1
    slug: chips
    name: Chips
    brand: acme
    category: snacks
    variants: [{id: p1-a, price: 10}]
    isActive: true
  - id: p2
    slug: old-chips
    name: Old Chips
    brand: acme
    category: snacks
    variants: [{id: p2-a, price: 0}]
    isActive: false
`))
	require.NoError(t, err)

	assert.Len(t, store.AllProducts(), 1)
	_, ok := store.ProductBySlug("old-chips")
	assert.False(t, ok)
}

func TestLoadRejectsInvalidData(t *testing.T) {
	cases := map[string]string{
		"no variants": `
products:
  - {id: p1, slug: chips, brand: acme, category: snacks, isActive: true}`,
		"no positive price": `
products:
  - id: p1
    slug: chips
    brand: acme
    category: snacks
    variants: [{id: p1-a, price: 0}]
    isActive: true`,
		"compare-at below price": `
products:
  - id: p1
    slug: chips
    brand: acme
    category: snacks
    variants: [{id: p1-a, price: 10, compareAtPrice: 5}]
    isActive: true`,
		"duplicate slug": `
products:
  - {id: p1, slug: chips, brand: acme, category: snacks, variants: [{id: a, price: 1}], isActive: true}
  - {id: p2, slug: chips, brand: acme, category: snacks, variants: [{id: b, price: 1}], isActive: true}`,
		"unsafe slug": `
products:
  - {id: p1, slug: "Big Chips", brand: acme, category: snacks, variants: [{id: a, price: 1}], isActive: true}`,
		"unknown brand": `
products:
  - {id: p1, slug: chips, brand: other, category: snacks, variants: [{id: a, price: 1}], isActive: true}`,
	}

	for name, products := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(validHeader + products))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("products: [unterminated"))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}
