package models

// Customer holds the contact details collected at checkout.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order is an immutable snapshot of a placed order. Orders are stored
// newest-first and are never modified after creation.
type Order struct {
	ID       string     `json:"id"`   // "ORD-<unix ms>"
	Date     string     `json:"date"` // ISO-8601
	Customer Customer   `json:"customer"`
	Items    []CartLine `json:"items"`
	Total    float64    `json:"total"`
}

// DashboardMetrics aggregates the order history for the admin panel.
type DashboardMetrics struct {
	TotalOrders          int            `json:"total_orders"`
	TotalCustomers       int            `json:"total_customers"`
	TotalRevenue         float64        `json:"total_revenue"`
	RevenueThisWeek      float64        `json:"revenue_this_week"`
	RevenueLastWeek      float64        `json:"revenue_last_week"`
	RevenueChangePercent int            `json:"revenue_change_percent"`
	OrdersByDay          []DayCount     `json:"orders_by_day"`
	RecentOrders         []OrderSummary `json:"recent_orders"`
	BestSelling          []ItemSales    `json:"best_selling"`
}

type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type OrderSummary struct {
	ID       string  `json:"id"`
	Customer string  `json:"customer"`
	Amount   float64 `json:"amount"`
}

type ItemSales struct {
	Name string `json:"name"`
	Sold int    `json:"sold"`
}
