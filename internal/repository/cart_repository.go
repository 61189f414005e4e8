package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/rahulsingh558/the-piquant-pan/internal/kv"
	"github.com/rahulsingh558/the-piquant-pan/internal/models"
)

const cartKey = "cart"

// CartRepository persists the cart as one JSON snapshot under a fixed key.
type CartRepository interface {
	Get(ctx context.Context) ([]models.CartLine, error)
	Save(ctx context.Context, lines []models.CartLine) error
	Clear(ctx context.Context) error
}

type cartRepository struct {
	store kv.Store
}

func NewCartRepository(store kv.Store) CartRepository {
	return &cartRepository{store: store}
}

func (r *cartRepository) Get(ctx context.Context) ([]models.CartLine, error) {
	raw, err := r.store.Get(ctx, cartKey)
	if err != nil {
		if err == kv.ErrNotFound {
			return []models.CartLine{}, nil
		}
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		log.Warn().Err(err).Str("key", cartKey).Msg("discarding malformed cart data")
		return []models.CartLine{}, nil
	}
	return lines, nil
}

func (r *cartRepository) Save(ctx context.Context, lines []models.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := r.store.Set(ctx, cartKey, string(data), 0); err != nil {
		return fmt.Errorf("failed to write cart: %w", err)
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, cartKey)
}
