package models

// CartLine is one customized, priced instance of a food item queued for
// checkout. TotalPrice is fixed at add time as base price plus the selected
// premium addon prices; quantity never recomputes it.
type CartLine struct {
	FoodID     int64   `json:"foodId"`
	Name       string  `json:"name"`
	BasePrice  float64 `json:"basePrice"`
	Addons     []Addon `json:"addons"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

// WishlistEntry is the reduced projection of a food item kept in the
// favorites list. Membership is boolean, there is no quantity.
type WishlistEntry struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
}
