package wishlist

import (
	"context"
	"errors"
	"testing"

	"github.com/bostany/storefront/internal/models"
	"github.com/bostany/storefront/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type failingStorage struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingStorage) Get(context.Context, string) (string, bool, error) {
	return "", false, f.getErr
}

func (f *failingStorage) Set(context.Context, string, string) error {
	f.sets++
	return f.setErr
}

func product(id string) models.Product {
	return models.Product{ID: id, Slug: id, Name: id, Variants: []models.ProductVariant{{ID: id + "-std", Price: 42}}}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, storage.NewMemory(), Key("s1"), nil)

	before := s.IsWishlisted("tuna-002")
	assert.True(t, s.ToggleItem(ctx, product("tuna-002")))
	assert.False(t, s.ToggleItem(ctx, product("tuna-002")))
	assert.Equal(t, before, s.IsWishlisted("tuna-002"))

	s.AddItem(ctx, product("oil-001"))
	s.ToggleItem(ctx, product("oil-001"))
	s.ToggleItem(ctx, product("oil-001"))
	assert.True(t, s.IsWishlisted("oil-001"))
}

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, storage.NewMemory(), Key("s1"), nil)

	s.AddItem(ctx, product("tuna-002"))
	s.AddItem(ctx, product("tuna-002"))
	s.AddItem(ctx, product("cof-001"))

	assert.Equal(t, 2, s.TotalItems())
	assert.Equal(t, "tuna-002", s.Items()[0].ID)

	s.RemoveItem(ctx, "tuna-002")
	s.RemoveItem(ctx, "missing")
	assert.Equal(t, 1, s.TotalItems())
}

func TestPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()

	first := New(ctx, mem, Key("s1"), nil)
	first.AddItem(ctx, product("tuna-002"))
	first.AddItem(ctx, product("juice-004"))
	first.RemoveItem(ctx, "tuna-002")

	raw, ok, err := mem.Get(ctx, "bostany-wishlist:s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, `"id":"juice-004"`)

	second := New(ctx, mem, Key("s1"), nil)
	require.Equal(t, 1, second.TotalItems())
	assert.True(t, second.IsWishlisted("juice-004"))

	// Other owners are isolated.
	assert.Zero(t, New(ctx, mem, Key("s2"), nil).TotalItems())
}

func TestEmptiedWishlistIsStoredAsEmptyArray(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()

	s := New(ctx, mem, Key("s1"), nil)
	s.AddItem(ctx, product("tuna-002"))
	s.RemoveItem(ctx, "tuna-002")

	raw, _, _ := mem.Get(ctx, Key("s1"))
	assert.Equal(t, "[]", raw)
}

func TestCorruptValueStartsEmpty(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	require.NoError(t, mem.Set(ctx, Key("s1"), "{not json"))

	core, logs := observer.New(zap.WarnLevel)
	s := New(ctx, mem, Key("s1"), zap.New(core))

	assert.Zero(t, s.TotalItems())
	assert.Equal(t, 1, logs.FilterMessage("wishlist: corrupt value, starting empty").Len())

	// The next mutation overwrites the corrupt value.
	s.AddItem(ctx, product("tuna-002"))
	assert.Equal(t, 1, New(ctx, mem, Key("s1"), nil).TotalItems())
}

func TestStoredDuplicatesCollapse(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	require.NoError(t, mem.Set(ctx, Key("s1"), `[{"id":"a"},{"id":"a"},{"id":""},{"id":"b"}]`))

	s := New(ctx, mem, Key("s1"), nil)
	assert.Equal(t, 2, s.TotalItems())
}

func TestStorageFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	broken := &failingStorage{getErr: errors.New("disk gone"), setErr: errors.New("disk gone")}

	core, logs := observer.New(zap.WarnLevel)
	s := New(ctx, broken, Key("s1"), zap.New(core))
	assert.Zero(t, s.TotalItems())

	s.AddItem(ctx, product("tuna-002"))
	assert.True(t, s.IsWishlisted("tuna-002"))
	assert.Equal(t, 1, broken.sets)
	assert.Equal(t, 1, logs.FilterMessage("wishlist: write failed").Len())
}
