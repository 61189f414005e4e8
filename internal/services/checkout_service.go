package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rahulsingh558/the-piquant-pan/internal/models"
	"github.com/rahulsingh558/the-piquant-pan/internal/repository"
)

// ErrInvalidOrder is returned when the checkout form fails validation or the
// cart is empty.
var ErrInvalidOrder = errors.New("invalid order: missing customer details or empty cart")

// CheckoutService validates customer details, computes the grand total and
// places orders. Placement is transactional: the order is persisted first and
// taken back again if clearing the cart fails.
type CheckoutService interface {
	IsFormValid(ctx context.Context, customer models.Customer) (bool, error)
	GrandTotal(ctx context.Context) (float64, error)
	PlaceOrder(ctx context.Context, customer models.Customer) (*models.Order, error)
	Orders(ctx context.Context) ([]models.Order, error)
}

type checkoutService struct {
	cart      CartService
	orderRepo repository.OrderRepository
	now       func() time.Time
}

func NewCheckoutService(cart CartService, orderRepo repository.OrderRepository) CheckoutService {
	return &checkoutService{cart: cart, orderRepo: orderRepo, now: time.Now}
}

func (s *checkoutService) IsFormValid(ctx context.Context, customer models.Customer) (bool, error) {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return false, err
	}
	return ValidateForm(customer, items), nil
}

// ValidateForm checks the checkout guard: trimmed name and address non-empty,
// trimmed phone at least 10 characters, cart non-empty.
func ValidateForm(customer models.Customer, items []models.CartLine) bool {
	return strings.TrimSpace(customer.Name) != "" &&
		len(strings.TrimSpace(customer.Phone)) >= 10 &&
		strings.TrimSpace(customer.Address) != "" &&
		len(items) > 0
}

func (s *checkoutService) GrandTotal(ctx context.Context) (float64, error) {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return 0, err
	}
	return GrandTotal(items), nil
}

// GrandTotal sums line total times quantity over the cart.
func GrandTotal(items []models.CartLine) float64 {
	var total float64
	for _, line := range items {
		total += line.TotalPrice * float64(line.Quantity)
	}
	return total
}

func (s *checkoutService) PlaceOrder(ctx context.Context, customer models.Customer) (*models.Order, error) {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return nil, err
	}
	if !ValidateForm(customer, items) {
		return nil, ErrInvalidOrder
	}

	now := s.now()
	order := models.Order{
		ID:       fmt.Sprintf("ORD-%d", now.UnixMilli()),
		Date:     now.UTC().Format(time.RFC3339),
		Customer: customer,
		Items:    items,
		Total:    GrandTotal(items),
	}

	if err := s.orderRepo.Prepend(ctx, order); err != nil {
		return nil, err
	}

	// Order and cart must move together: take the order back if the cart
	// cannot be cleared.
	if err := s.cart.Clear(ctx); err != nil {
		if rbErr := s.orderRepo.Remove(ctx, order.ID); rbErr != nil {
			return nil, fmt.Errorf("failed to clear cart (order rollback also failed: %v): %w", rbErr, err)
		}
		return nil, fmt.Errorf("failed to clear cart, order rolled back: %w", err)
	}

	return &order, nil
}

func (s *checkoutService) Orders(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.GetAll(ctx)
}
