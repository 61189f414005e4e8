package models

// FoodType is the dietary classification of a menu item. It decides which
// premium addon set the item is offered with.
type FoodType string

const (
	TypeVeg    FoodType = "veg"
	TypeEgg    FoodType = "egg"
	TypeNonVeg FoodType = "nonveg"
)

func (t FoodType) Valid() bool {
	switch t {
	case TypeVeg, TypeEgg, TypeNonVeg:
		return true
	}
	return false
}

// Category is the menu section a food item belongs to.
type Category string

const (
	CategorySnacks     Category = "snacks"
	CategoryStarters   Category = "starters"
	CategorySandwiches Category = "sandwiches"
	CategoryNoodles    Category = "noodles"
	CategoryPizzas     Category = "pizzas"
	CategoryPasta      Category = "pasta"
	CategoryBurgers    Category = "burgers"
	CategoryGravy      Category = "gravy"
	CategoryRoti       Category = "roti"
	CategoryThali      Category = "thali"
	CategoryBeverages  Category = "beverages"
	CategorySweets     Category = "sweets"
	CategoryHealthy    Category = "healthy"
	CategoryBakery     Category = "bakery"
)

// Categories lists every menu section in display order.
var Categories = []Category{
	CategorySnacks, CategoryStarters, CategorySandwiches, CategoryNoodles,
	CategoryPizzas, CategoryPasta, CategoryBurgers, CategoryGravy,
	CategoryRoti, CategoryThali, CategoryBeverages, CategorySweets,
	CategoryHealthy, CategoryBakery,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayName returns the human-readable section title shown in the admin panel.
func (c Category) DisplayName() string {
	names := map[Category]string{
		CategorySnacks:     "Snacks",
		CategoryStarters:   "Starters",
		CategorySandwiches: "Sandwiches",
		CategoryNoodles:    "Noodles & Maggi",
		CategoryPizzas:     "Pizzas",
		CategoryPasta:      "Pasta",
		CategoryBurgers:    "Burgers",
		CategoryGravy:      "Gravy Items",
		CategoryRoti:       "Roti & Rice",
		CategoryThali:      "Thali",
		CategoryBeverages:  "Beverages",
		CategorySweets:     "Sweets & Bakery",
		CategoryHealthy:    "Healthy Food",
		CategoryBakery:     "Bakery",
	}
	if name, ok := names[c]; ok {
		return name
	}
	return string(c)
}

// Addon is a single topping. Price 0 marks the free class (pre-selected,
// price-neutral); price > 0 marks the premium class (opt-in, paid).
type Addon struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// AdminMenuItem is the persisted, admin-editable menu record. The admin
// collection is the source of truth for the storefront whenever non-empty.
type AdminMenuItem struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Subtitle  string   `json:"subtitle"`
	BasePrice float64  `json:"basePrice"`
	Type      FoodType `json:"type"`
	Category  Category `json:"category"`
	Image     string   `json:"image"`
}

// DisplayFood is a menu item as shown to a shopper: the admin record plus its
// selectable addon sets. Addon availability is a pure function of Type.
type DisplayFood struct {
	AdminMenuItem
	Addons       []Addon `json:"addons"`
	FreeAddonIDs []int   `json:"freeAddonIds"`
}
