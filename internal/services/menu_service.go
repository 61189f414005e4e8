package services

import (
	"context"

	"github.com/rahulsingh558/the-piquant-pan/internal/catalog"
	"github.com/rahulsingh558/the-piquant-pan/internal/models"
	"github.com/rahulsingh558/the-piquant-pan/internal/repository"
)

// FilterAll is the wildcard value for both storefront filters.
const FilterAll = "all"

// MenuService produces the list of food items visible to a shopper, with
// their selectable addons attached.
type MenuService interface {
	LoadMenu(ctx context.Context) ([]models.DisplayFood, error)
	FilteredFoods(ctx context.Context, foodType, category string) ([]models.DisplayFood, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func (s *menuService) LoadMenu(ctx context.Context) ([]models.DisplayFood, error) {
	adminItems, err := s.menuRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveMenu(adminItems, catalog.FallbackMenu()), nil
}

func (s *menuService) FilteredFoods(ctx context.Context, foodType, category string) ([]models.DisplayFood, error) {
	foods, err := s.LoadMenu(ctx)
	if err != nil {
		return nil, err
	}
	return FilterFoods(foods, foodType, category), nil
}

// ResolveMenu merges the admin collection with the fallback catalog: the
// admin store is the source of truth whenever non-empty, the fallback is used
// only when it has never been populated. Pure, no storage involved.
func ResolveMenu(adminItems []models.AdminMenuItem, fallback []models.DisplayFood) []models.DisplayFood {
	if len(adminItems) == 0 {
		return fallback
	}
	foods := make([]models.DisplayFood, len(adminItems))
	for i, item := range adminItems {
		foods[i] = MapAdminItem(item)
	}
	return foods
}

// MapAdminItem turns an admin record into a display record by attaching the
// free addon set plus the premium set selected by the item's diet type.
func MapAdminItem(item models.AdminMenuItem) models.DisplayFood {
	if item.Subtitle == "" {
		item.Subtitle = "Delicious • Fresh • Flavorful"
	}
	return models.DisplayFood{
		AdminMenuItem: item,
		Addons:        catalog.AddonsFor(item.Type),
		FreeAddonIDs:  catalog.FreeAddonIDs(),
	}
}

// FilterFoods applies the AND-combined type and category filters. "all" (or
// an empty string) is a wildcard on either axis.
func FilterFoods(foods []models.DisplayFood, foodType, category string) []models.DisplayFood {
	matched := make([]models.DisplayFood, 0, len(foods))
	for _, f := range foods {
		if foodType != "" && foodType != FilterAll && string(f.Type) != foodType {
			continue
		}
		if category != "" && category != FilterAll && string(f.Category) != category {
			continue
		}
		matched = append(matched, f)
	}
	return matched
}

// FreeAddons returns the food's addons in the free class (price 0).
func FreeAddons(food models.DisplayFood) []models.Addon {
	free := make([]models.Addon, 0, len(food.Addons))
	for _, a := range food.Addons {
		if a.Price == 0 {
			free = append(free, a)
		}
	}
	return free
}

// PremiumAddons returns the food's addons in the premium class (price > 0).
func PremiumAddons(food models.DisplayFood) []models.Addon {
	premium := make([]models.Addon, 0, len(food.Addons))
	for _, a := range food.Addons {
		if a.Price > 0 {
			premium = append(premium, a)
		}
	}
	return premium
}
