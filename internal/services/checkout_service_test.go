package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rahulsingh558/the-piquant-pan/internal/kv"
	"github.com/rahulsingh558/the-piquant-pan/internal/models"
	"github.com/rahulsingh558/the-piquant-pan/internal/repository"
)

func TestValidateForm(t *testing.T) {
	oneLine := []models.CartLine{{TotalPrice: 100, Quantity: 1}}
	tests := []struct {
		name     string
		customer models.Customer
		items    []models.CartLine
		want     bool
	}{
		{"valid", models.Customer{Name: "Asha", Phone: "9876543210", Address: "12 MG Road"}, oneLine, true},
		{"empty cart", models.Customer{Name: "Asha", Phone: "9876543210", Address: "12 MG Road"}, nil, false},
		{"blank name", models.Customer{Name: "   ", Phone: "9876543210", Address: "12 MG Road"}, oneLine, false},
		{"short phone", models.Customer{Name: "Asha", Phone: "98765", Address: "12 MG Road"}, oneLine, false},
		{"padded phone", models.Customer{Name: "Asha", Phone: "  98765    ", Address: "12 MG Road"}, oneLine, false},
		{"blank address", models.Customer{Name: "Asha", Phone: "9876543210", Address: ""}, oneLine, false},
	}
	for _, tt := range tests {
		if got := ValidateForm(tt.customer, tt.items); got != tt.want {
			t.Errorf("%s: ValidateForm = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestGrandTotal(t *testing.T) {
	items := []models.CartLine{
		{TotalPrice: 150, Quantity: 2},
		{TotalPrice: 80, Quantity: 1},
	}
	if got := GrandTotal(items); got != 380 {
		t.Errorf("GrandTotal = %v, want 380", got)
	}
	if got := GrandTotal(nil); got != 0 {
		t.Errorf("GrandTotal(empty) = %v, want 0", got)
	}
}

func TestPlaceOrderPrependsAndClearsCart(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	cart := NewCartService(repository.NewCartRepository(store))
	orderRepo := repository.NewOrderRepository(store)
	svc := NewCheckoutService(cart, orderRepo)

	cart.Add(ctx, models.CartLine{FoodID: 1, Name: "Veg Thali", TotalPrice: 160, Quantity: 1})
	cart.Add(ctx, models.CartLine{FoodID: 2, Name: "Lassi", TotalPrice: 70, Quantity: 2})

	customer := models.Customer{Name: "Asha", Phone: "9876543210", Address: "12 MG Road"}
	first, err := svc.PlaceOrder(ctx, customer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(first.ID, "ORD-") {
		t.Errorf("order id = %q, want ORD- prefix", first.ID)
	}
	if first.Total != 300 {
		t.Errorf("order total = %v, want 300", first.Total)
	}
	if len(first.Items) != 2 {
		t.Errorf("order has %d lines, want 2", len(first.Items))
	}
	if _, perr := time.Parse(time.RFC3339, first.Date); perr != nil {
		t.Errorf("order date %q is not RFC3339: %v", first.Date, perr)
	}

	count, _ := cart.Count(ctx)
	if count != 0 {
		t.Errorf("cart count after checkout = %d, want 0", count)
	}

	// Second order lands in front of the first.
	cart.Add(ctx, models.CartLine{FoodID: 3, Name: "Cold Coffee", TotalPrice: 80, Quantity: 1})
	second, err := svc.PlaceOrder(ctx, customer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, err := orderRepo.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Errorf("orders not newest-first: got [%s, %s]", orders[0].ID, orders[1].ID)
	}
}

func TestPlaceOrderRejectsInvalidForm(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	cart := NewCartService(repository.NewCartRepository(store))
	orderRepo := repository.NewOrderRepository(store)
	svc := NewCheckoutService(cart, orderRepo)

	// Valid contact details, empty cart.
	_, err := svc.PlaceOrder(ctx, models.Customer{Name: "Asha", Phone: "9876543210", Address: "12 MG Road"})
	if !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("error = %v, want ErrInvalidOrder", err)
	}

	orders, _ := orderRepo.GetAll(ctx)
	if len(orders) != 0 {
		t.Errorf("got %d orders, want none", len(orders))
	}
}

// failingStore fails Remove for one key to exercise the rollback path.
type failingStore struct {
	kv.Store
	failRemoveKey string
}

func (s *failingStore) Remove(ctx context.Context, key string) error {
	if key == s.failRemoveKey {
		return errors.New("storage unavailable")
	}
	return s.Store.Remove(ctx, key)
}

func TestPlaceOrderRollsBackWhenCartClearFails(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{Store: kv.NewMemoryStore(), failRemoveKey: "cart"}
	cart := NewCartService(repository.NewCartRepository(store))
	orderRepo := repository.NewOrderRepository(store)
	svc := NewCheckoutService(cart, orderRepo)

	cart.Add(ctx, models.CartLine{FoodID: 1, TotalPrice: 100, Quantity: 1})

	_, err := svc.PlaceOrder(ctx, models.Customer{Name: "Asha", Phone: "9876543210", Address: "12 MG Road"})
	if err == nil {
		t.Fatal("expected an error when the cart cannot be cleared")
	}

	// The order written before the failed clear must be gone again.
	orders, gerr := orderRepo.GetAll(ctx)
	if gerr != nil {
		t.Fatalf("unexpected error: %v", gerr)
	}
	if len(orders) != 0 {
		t.Errorf("got %d orders after rollback, want 0", len(orders))
	}

	count, _ := cart.Count(ctx)
	if count != 1 {
		t.Errorf("cart count = %d, want the line still present", count)
	}
}
