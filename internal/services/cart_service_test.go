package services

import (
	"context"
	"testing"

	"github.com/rahulsingh558/the-piquant-pan/internal/kv"
	"github.com/rahulsingh558/the-piquant-pan/internal/models"
	"github.com/rahulsingh558/the-piquant-pan/internal/repository"
)

func newTestCart() CartService {
	return NewCartService(repository.NewCartRepository(kv.NewMemoryStore()))
}

func TestAddNeverMergesLines(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart()

	line := models.CartLine{FoodID: 1, Name: "Veg Burger", BasePrice: 120, Quantity: 1, TotalPrice: 120}
	if err := cart.Add(ctx, line); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cart.Add(ctx, line); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := cart.Items(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("got %d lines, want 2 separate lines for the same food", len(items))
	}
}

func TestSubscribersNotifiedOnEveryWrite(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart()

	var counts []int
	cart.Subscribe(func(count int) { counts = append(counts, count) })

	cart.Add(ctx, models.CartLine{FoodID: 1, TotalPrice: 100, Quantity: 1})
	cart.Add(ctx, models.CartLine{FoodID: 2, TotalPrice: 80, Quantity: 1})
	cart.Clear(ctx)

	want := []int{1, 2, 0}
	if len(counts) != len(want) {
		t.Fatalf("got %d notifications, want %d", len(counts), len(want))
	}
	for i, c := range counts {
		if c != want[i] {
			t.Errorf("notification %d = %d, want %d", i, c, want[i])
		}
	}
}

func TestClearEmptiesCart(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart()

	cart.Add(ctx, models.CartLine{FoodID: 1, TotalPrice: 100, Quantity: 1})
	if err := cart.Clear(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, err := cart.Count(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("count after clear = %d, want 0", count)
	}
}
