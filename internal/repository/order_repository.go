package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/rahulsingh558/the-piquant-pan/internal/kv"
	"github.com/rahulsingh558/the-piquant-pan/internal/models"
)

const ordersKey = "orders"

// OrderRepository persists the order history newest-first under a fixed key.
// Orders are immutable; Remove exists only so a failed checkout can take back
// the order it just wrote.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	Prepend(ctx context.Context, order models.Order) error
	Remove(ctx context.Context, id string) error
}

type orderRepository struct {
	store kv.Store
}

func NewOrderRepository(store kv.Store) OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	raw, err := r.store.Get(ctx, ordersKey)
	if err != nil {
		if err == kv.ErrNotFound {
			return []models.Order{}, nil
		}
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		log.Warn().Err(err).Str("key", ordersKey).Msg("discarding malformed order data")
		return []models.Order{}, nil
	}
	return orders, nil
}

func (r *orderRepository) Prepend(ctx context.Context, order models.Order) error {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	orders = append([]models.Order{order}, orders...)
	return r.save(ctx, orders)
}

func (r *orderRepository) Remove(ctx context.Context, id string) error {
	orders, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	return r.save(ctx, kept)
}

func (r *orderRepository) save(ctx context.Context, orders []models.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to marshal orders: %w", err)
	}
	if err := r.store.Set(ctx, ordersKey, string(data), 0); err != nil {
		return fmt.Errorf("failed to write orders: %w", err)
	}
	return nil
}
