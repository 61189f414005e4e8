package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/rahulsingh558/the-piquant-pan/internal/kv"
	"github.com/rahulsingh558/the-piquant-pan/internal/models"
)

const wishlistKey = "wishlist"

// WishlistRepository persists the favorites list under a fixed key.
type WishlistRepository interface {
	Get(ctx context.Context) ([]models.WishlistEntry, error)
	Save(ctx context.Context, entries []models.WishlistEntry) error
}

type wishlistRepository struct {
	store kv.Store
}

func NewWishlistRepository(store kv.Store) WishlistRepository {
	return &wishlistRepository{store: store}
}

func (r *wishlistRepository) Get(ctx context.Context) ([]models.WishlistEntry, error) {
	raw, err := r.store.Get(ctx, wishlistKey)
	if err != nil {
		if err == kv.ErrNotFound {
			return []models.WishlistEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read wishlist: %w", err)
	}

	var entries []models.WishlistEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Warn().Err(err).Str("key", wishlistKey).Msg("discarding malformed wishlist data")
		return []models.WishlistEntry{}, nil
	}
	return entries, nil
}

func (r *wishlistRepository) Save(ctx context.Context, entries []models.WishlistEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal wishlist: %w", err)
	}
	if err := r.store.Set(ctx, wishlistKey, string(data), 0); err != nil {
		return fmt.Errorf("failed to write wishlist: %w", err)
	}
	return nil
}
