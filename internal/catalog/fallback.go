package catalog

import "github.com/rahulsingh558/the-piquant-pan/internal/models"

// fallbackIDs picks the 25 storefront items shown while the admin store has
// never been populated. The selection spans every menu section.
var fallbackIDs = []int64{
	1, 6, // snacks
	13, 15, 16, // starters
	19, 21, // sandwiches
	22, 23, // noodles
	26, 27, // pizzas
	28,     // pasta
	30, 31, // burgers
	32, 34, // gravy
	36, 38, // roti
	39, 40, // thali
	41, 42, // beverages
	44, // sweets
	46, // healthy
	48, // bakery
}

// FallbackMenu returns the hard-coded default menu with addon sets already
// attached. It is used only when the admin store is empty.
func FallbackMenu() []models.DisplayFood {
	byID := make(map[int64]models.AdminMenuItem, len(seedMenu))
	for _, item := range seedMenu {
		byID[item.ID] = item
	}

	foods := make([]models.DisplayFood, 0, len(fallbackIDs))
	for _, id := range fallbackIDs {
		item, ok := byID[id]
		if !ok {
			continue
		}
		foods = append(foods, models.DisplayFood{
			AdminMenuItem: item,
			Addons:        AddonsFor(item.Type),
			FreeAddonIDs:  FreeAddonIDs(),
		})
	}
	return foods
}
