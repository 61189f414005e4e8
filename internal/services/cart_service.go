package services

import (
	"context"
	"sync"

	"github.com/rahulsingh558/the-piquant-pan/internal/models"
	"github.com/rahulsingh558/the-piquant-pan/internal/repository"
)

// CartService holds the shared cart. Adding the same food twice creates two
// separate lines; there is no merge and no per-line mutation. Every
// successful Add or Clear notifies all current subscribers with the new item
// count before returning.
type CartService interface {
	Items(ctx context.Context) ([]models.CartLine, error)
	Count(ctx context.Context) (int, error)
	Add(ctx context.Context, line models.CartLine) error
	Clear(ctx context.Context) error
	Subscribe(fn func(count int))
}

type cartService struct {
	cartRepo repository.CartRepository

	mu          sync.Mutex
	subscribers []func(count int)
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartService{cartRepo: cartRepo}
}

func (s *cartService) Items(ctx context.Context) ([]models.CartLine, error) {
	return s.cartRepo.Get(ctx)
}

func (s *cartService) Count(ctx context.Context) (int, error) {
	lines, err := s.cartRepo.Get(ctx)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

func (s *cartService) Add(ctx context.Context, line models.CartLine) error {
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	lines, err := s.cartRepo.Get(ctx)
	if err != nil {
		return err
	}
	lines = append(lines, line)
	if err := s.cartRepo.Save(ctx, lines); err != nil {
		return err
	}

	s.notify(len(lines))
	return nil
}

func (s *cartService) Clear(ctx context.Context) error {
	if err := s.cartRepo.Clear(ctx); err != nil {
		return err
	}
	s.notify(0)
	return nil
}

// Subscribe registers a count listener. Listeners run synchronously on the
// goroutine performing the cart write.
func (s *cartService) Subscribe(fn func(count int)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

func (s *cartService) notify(count int) {
	s.mu.Lock()
	subs := make([]func(int), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(count)
	}
}
