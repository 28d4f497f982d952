package cart

import (
	"testing"

	"github.com/bostany/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, prices ...int64) models.Product {
	p := models.Product{ID: id, Slug: id, Name: id}
	for i, price := range prices {
		p.Variants = append(p.Variants, models.ProductVariant{
			ID:    id + "-" + string(rune('a'+i)),
			Price: price,
		})
	}
	return p
}

func TestAddItemMergesSameLine(t *testing.T) {
	s := New()
	tuna := product("tuna-002", 42)

	require.NoError(t, s.AddItem(tuna, tuna.Variants[0], 2))
	require.NoError(t, s.AddItem(tuna, tuna.Variants[0], 3))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, s.TotalItems())
	assert.Equal(t, int64(210), s.Subtotal())
}

func TestAddItemKeepsVariantsApart(t *testing.T) {
	s := New()
	oil := product("oil-001", 95, 165)

	require.NoError(t, s.AddItem(oil, oil.Variants[0], 1))
	require.NoError(t, s.AddItem(oil, oil.Variants[1], 1))

	assert.Len(t, s.Items(), 2)
	assert.Equal(t, int64(260), s.Subtotal())
}

func TestAddItemRejectsBadInput(t *testing.T) {
	s := New()
	tuna := product("tuna-002", 42)
	oil := product("oil-001", 95)

	assert.ErrorIs(t, s.AddItem(tuna, tuna.Variants[0], 0), ErrInvalidQuantity)
	assert.ErrorIs(t, s.AddItem(tuna, oil.Variants[0], 1), ErrVariantMismatch)
	assert.True(t, s.IsEmpty())
}

func TestStoreHasNoQuantityCap(t *testing.T) {
	s := New()
	tuna := product("tuna-002", 42)

	require.NoError(t, s.AddItem(tuna, tuna.Variants[0], 10))
	require.NoError(t, s.AddItem(tuna, tuna.Variants[0], 5))
	assert.Equal(t, 15, s.TotalItems())
}

func TestUpdateQuantityToZeroRemoves(t *testing.T) {
	s := New()
	tuna := product("tuna-002", 42)
	require.NoError(t, s.AddItem(tuna, tuna.Variants[0], 2))

	assert.False(t, s.UpdateQuantity("tuna-002", "tuna-002-a", 0))
	_, ok := s.Item("tuna-002", "tuna-002-a")
	assert.False(t, ok)
	assert.True(t, s.IsEmpty())
}

func TestUpdateQuantitySetsExactly(t *testing.T) {
	s := New()
	tuna := product("tuna-002", 42)
	require.NoError(t, s.AddItem(tuna, tuna.Variants[0], 2))

	assert.True(t, s.UpdateQuantity("tuna-002", "tuna-002-a", 7))
	item, ok := s.Item("tuna-002", "tuna-002-a")
	require.True(t, ok)
	assert.Equal(t, 7, item.Quantity)

	assert.False(t, s.UpdateQuantity("missing", "missing-a", 3))
}

func TestRemoveMissingIsNoop(t *testing.T) {
	s := New()
	s.RemoveItem("nope", "nope")
	assert.True(t, s.IsEmpty())
}

func TestSubtotalTracksEveryMutation(t *testing.T) {
	s := New()
	a := product("a", 10, 25)
	b := product("b", 7)

	check := func() {
		var want int64
		for _, item := range s.Items() {
			want += item.Variant.Price * int64(item.Quantity)
		}
		assert.Equal(t, want, s.Subtotal())
	}

	require.NoError(t, s.AddItem(a, a.Variants[0], 3))
	check()
	require.NoError(t, s.AddItem(a, a.Variants[1], 1))
	check()
	require.NoError(t, s.AddItem(b, b.Variants[0], 4))
	check()
	s.UpdateQuantity("a", "a-a", 1)
	check()
	s.RemoveItem("a", "a-b")
	check()
	assert.Equal(t, int64(38), s.Subtotal())

	s.Clear()
	assert.Zero(t, s.Subtotal())
	assert.Zero(t, s.TotalItems())
}

func TestItemsIsACopy(t *testing.T) {
	s := New()
	a := product("a", 10)
	require.NoError(t, s.AddItem(a, a.Variants[0], 1))

	items := s.Items()
	items[0].Quantity = 99
	assert.Equal(t, 1, s.TotalItems())
}
