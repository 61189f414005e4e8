// Package catalog holds the fixed menu data: the addon tables, the full seed
// menu used to populate an empty admin store, and the fallback storefront
// menu shown while the admin store has never been populated.
package catalog

import "github.com/rahulsingh558/the-piquant-pan/internal/models"

// freeAddons are identical for every food type and pre-selected by default
// when a shopper opens the customization view. Their price is always 0.
var freeAddons = []models.Addon{
	{ID: 1, Name: "Onion", Price: 0},
	{ID: 2, Name: "Tomato", Price: 0},
	{ID: 3, Name: "Cucumber", Price: 0},
	{ID: 4, Name: "Lemon", Price: 0},
	{ID: 5, Name: "Coriander", Price: 0},
}

// vegEggPremiumAddons are offered with veg and egg items.
var vegEggPremiumAddons = []models.Addon{
	{ID: 6, Name: "Sweet Corn", Price: 20},
	{ID: 7, Name: "Broccoli", Price: 25},
	{ID: 8, Name: "Beans", Price: 15},
	{ID: 9, Name: "Peas", Price: 15},
	{ID: 10, Name: "Spinach", Price: 20},
	{ID: 15, Name: "Bell Pepper", Price: 15},
}

// nonvegPremiumAddons are offered with nonveg items.
var nonvegPremiumAddons = []models.Addon{
	{ID: 11, Name: "Capsicum", Price: 20},
	{ID: 12, Name: "Broccoli", Price: 25},
	{ID: 13, Name: "Cheese", Price: 30},
	{ID: 14, Name: "Mushroom", Price: 25},
	{ID: 16, Name: "Bell Pepper", Price: 15},
}

// FreeAddons returns the free addon set shared by all food types.
func FreeAddons() []models.Addon {
	return clone(freeAddons)
}

// FreeAddonIDs returns the ids of the free addon set.
func FreeAddonIDs() []int {
	ids := make([]int, len(freeAddons))
	for i, a := range freeAddons {
		ids[i] = a.ID
	}
	return ids
}

// PremiumAddonsFor returns the premium addon set for a food type.
func PremiumAddonsFor(t models.FoodType) []models.Addon {
	switch t {
	case models.TypeVeg, models.TypeEgg:
		return clone(vegEggPremiumAddons)
	case models.TypeNonVeg:
		return clone(nonvegPremiumAddons)
	}
	return nil
}

// AddonsFor returns the full selectable addon list for a food type:
// the free set followed by the type's premium set.
func AddonsFor(t models.FoodType) []models.Addon {
	return append(FreeAddons(), PremiumAddonsFor(t)...)
}

func clone(addons []models.Addon) []models.Addon {
	out := make([]models.Addon, len(addons))
	copy(out, addons)
	return out
}
