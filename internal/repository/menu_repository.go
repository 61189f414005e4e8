package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rahulsingh558/the-piquant-pan/internal/kv"
	"github.com/rahulsingh558/the-piquant-pan/internal/models"
)

const menuKey = "admin_menu_items"

// MenuRepository persists the admin-editable menu collection as one JSON
// snapshot under a fixed key. Every write replaces the whole collection.
type MenuRepository interface {
	GetAll(ctx context.Context) ([]models.AdminMenuItem, error)
	GetByID(ctx context.Context, id int64) (*models.AdminMenuItem, error)
	Add(ctx context.Context, item models.AdminMenuItem) (models.AdminMenuItem, error)
	Update(ctx context.Context, item models.AdminMenuItem) error
	Delete(ctx context.Context, id int64) error
	SeedIfEmpty(ctx context.Context, items []models.AdminMenuItem) error
	ClearAll(ctx context.Context) error
}

type menuRepository struct {
	store kv.Store
}

func NewMenuRepository(store kv.Store) MenuRepository {
	return &menuRepository{store: store}
}

func (r *menuRepository) GetAll(ctx context.Context) ([]models.AdminMenuItem, error) {
	raw, err := r.store.Get(ctx, menuKey)
	if err != nil {
		if err == kv.ErrNotFound {
			return []models.AdminMenuItem{}, nil
		}
		return nil, fmt.Errorf("failed to read menu: %w", err)
	}

	var items []models.AdminMenuItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// Malformed persisted data counts as an empty store.
		log.Warn().Err(err).Str("key", menuKey).Msg("discarding malformed menu data")
		return []models.AdminMenuItem{}, nil
	}
	return items, nil
}

func (r *menuRepository) GetByID(ctx context.Context, id int64) (*models.AdminMenuItem, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, nil
}

func (r *menuRepository) Add(ctx context.Context, item models.AdminMenuItem) (models.AdminMenuItem, error) {
	items, err := r.GetAll(ctx)
	if err != nil {
		return models.AdminMenuItem{}, err
	}

	// Timestamp-derived id, bumped past the current maximum so that two
	// additions within the same millisecond stay unique.
	id := time.Now().UnixMilli()
	for _, existing := range items {
		if existing.ID >= id {
			id = existing.ID + 1
		}
	}
	item.ID = id

	items = append(items, item)
	if err := r.save(ctx, items); err != nil {
		return models.AdminMenuItem{}, err
	}
	return item, nil
}

func (r *menuRepository) Update(ctx context.Context, item models.AdminMenuItem) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	// Replace by id; unknown ids leave the collection untouched.
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
		}
	}
	if !replaced {
		return nil
	}
	return r.save(ctx, items)
}

func (r *menuRepository) Delete(ctx context.Context, id int64) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return r.save(ctx, kept)
}

func (r *menuRepository) SeedIfEmpty(ctx context.Context, seed []models.AdminMenuItem) error {
	items, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	return r.save(ctx, seed)
}

func (r *menuRepository) ClearAll(ctx context.Context) error {
	return r.store.Remove(ctx, menuKey)
}

func (r *menuRepository) save(ctx context.Context, items []models.AdminMenuItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal menu: %w", err)
	}
	if err := r.store.Set(ctx, menuKey, string(data), 0); err != nil {
		return fmt.Errorf("failed to write menu: %w", err)
	}
	return nil
}
