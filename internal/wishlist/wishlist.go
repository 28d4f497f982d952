// Package wishlist is the per-shopper saved product list. It is persisted as
// a JSON array of products under one storage key and survives sessions.
package wishlist

import (
	"context"
	"encoding/json"

	"github.com/bostany/storefront/internal/models"
	"go.uber.org/zap"
)

// KeyPrefix namespaces wishlist keys in the shared store.
const KeyPrefix = "bostany-wishlist:"

// Key returns the storage key for an owner id.
func Key(owner string) string {
	return KeyPrefix + owner
}

// Storage is the durable key/value primitive the wishlist persists to.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Store has set semantics by product id and keeps insertion order. It is
// not safe for concurrent use.
type Store struct {
	storage Storage
	key     string
	log     *zap.Logger
	items   []models.Product
}

// New loads the wishlist stored under key. A missing, unreadable or corrupt
// value yields an empty wishlist; the failure is logged, never returned.
func New(ctx context.Context, storage Storage, key string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{storage: storage, key: key, log: log}

	raw, ok, err := storage.Get(ctx, key)
	if err != nil {
		log.Warn("wishlist: read failed, starting empty", zap.String("key", key), zap.Error(err))
		return s
	}
	if !ok || raw == "" {
		return s
	}

	var stored []models.Product
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		log.Warn("wishlist: corrupt value, starting empty", zap.String("key", key), zap.Error(err))
		return s
	}
	for _, p := range stored {
		if p.ID == "" || s.IsWishlisted(p.ID) {
			continue
		}
		s.items = append(s.items, p)
	}
	return s
}

// AddItem adds p unless it is already present.
func (s *Store) AddItem(ctx context.Context, p models.Product) {
	if s.IsWishlisted(p.ID) {
		return
	}
	s.items = append(s.items, p)
	s.persist(ctx)
}

// RemoveItem removes the product if present.
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	i := s.index(productID)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.persist(ctx)
}

// ToggleItem adds p if absent, removes it otherwise, and reports whether it
// is wishlisted afterwards.
func (s *Store) ToggleItem(ctx context.Context, p models.Product) bool {
	if s.IsWishlisted(p.ID) {
		s.RemoveItem(ctx, p.ID)
		return false
	}
	s.AddItem(ctx, p)
	return true
}

func (s *Store) IsWishlisted(productID string) bool {
	return s.index(productID) >= 0
}

func (s *Store) TotalItems() int {
	return len(s.items)
}

// Items returns a copy in insertion order.
func (s *Store) Items() []models.Product {
	out := make([]models.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) index(productID string) int {
	for i, p := range s.items {
		if p.ID == productID {
			return i
		}
	}
	return -1
}

// persist writes the whole set. Write failures only cost durability, so they
// are logged and the in-memory state stands.
func (s *Store) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []models.Product{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		s.log.Error("wishlist: encode failed", zap.String("key", s.key), zap.Error(err))
		return
	}
	if err := s.storage.Set(ctx, s.key, string(raw)); err != nil {
		s.log.Error("wishlist: write failed", zap.String("key", s.key), zap.Error(err))
	}
}
