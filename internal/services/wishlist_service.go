package services

import (
	"context"

	"github.com/rahulsingh558/the-piquant-pan/internal/models"
	"github.com/rahulsingh558/the-piquant-pan/internal/repository"
)

// WishlistService keeps the id-keyed favorites list. Toggle is a symmetric
// difference: present entries are removed, absent foods are appended as a
// reduced projection. Every toggle is persisted.
type WishlistService interface {
	Items(ctx context.Context) ([]models.WishlistEntry, error)
	Toggle(ctx context.Context, food models.DisplayFood) error
	IsWishlisted(ctx context.Context, id int64) (bool, error)
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository) WishlistService {
	return &wishlistService{wishlistRepo: wishlistRepo}
}

func (s *wishlistService) Items(ctx context.Context) ([]models.WishlistEntry, error) {
	return s.wishlistRepo.Get(ctx)
}

func (s *wishlistService) Toggle(ctx context.Context, food models.DisplayFood) error {
	entries, err := s.wishlistRepo.Get(ctx)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		if entry.ID == food.ID {
			entries = append(entries[:i], entries[i+1:]...)
			return s.wishlistRepo.Save(ctx, entries)
		}
	}

	entries = append(entries, models.WishlistEntry{
		ID:        food.ID,
		Name:      food.Name,
		BasePrice: food.BasePrice,
	})
	return s.wishlistRepo.Save(ctx, entries)
}

func (s *wishlistService) IsWishlisted(ctx context.Context, id int64) (bool, error) {
	entries, err := s.wishlistRepo.Get(ctx)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry.ID == id {
			return true, nil
		}
	}
	return false, nil
}
