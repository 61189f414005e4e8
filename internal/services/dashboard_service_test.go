package services

import (
	"context"
	"testing"
	"time"

	"github.com/rahulsingh558/the-piquant-pan/internal/kv"
	"github.com/rahulsingh558/the-piquant-pan/internal/models"
	"github.com/rahulsingh558/the-piquant-pan/internal/repository"
)

func TestDashboardMetrics(t *testing.T) {
	ctx := context.Background()
	orderRepo := repository.NewOrderRepository(kv.NewMemoryStore())
	svc := NewDashboardService(orderRepo).(*dashboardService)

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	older := models.Order{
		ID:       "ORD-1",
		Date:     now.AddDate(0, 0, -10).Format(time.RFC3339),
		Customer: models.Customer{Name: "Rahul", Phone: "9000000001"},
		Items:    []models.CartLine{{Name: "Paneer Tikka", Quantity: 1, TotalPrice: 180}},
		Total:    180,
	}
	recent := models.Order{
		ID:       "ORD-2",
		Date:     now.AddDate(0, 0, -1).Format(time.RFC3339),
		Customer: models.Customer{Name: "Asha", Phone: "9000000002"},
		Items: []models.CartLine{
			{Name: "Veg Pakoda", Quantity: 2, TotalPrice: 50},
			{Name: "Sweet Lassi", Quantity: 1, TotalPrice: 70},
		},
		Total: 170,
	}
	orderRepo.Prepend(ctx, older)
	orderRepo.Prepend(ctx, recent)

	metrics, err := svc.Metrics(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if metrics.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", metrics.TotalOrders)
	}
	if metrics.TotalCustomers != 2 {
		t.Errorf("TotalCustomers = %d, want 2", metrics.TotalCustomers)
	}
	if metrics.TotalRevenue != 350 {
		t.Errorf("TotalRevenue = %v, want 350", metrics.TotalRevenue)
	}
	if metrics.RevenueThisWeek != 170 || metrics.RevenueLastWeek != 180 {
		t.Errorf("weekly revenue = %v/%v, want 170/180", metrics.RevenueThisWeek, metrics.RevenueLastWeek)
	}
	if metrics.RevenueChangePercent != -6 {
		t.Errorf("RevenueChangePercent = %d, want -6", metrics.RevenueChangePercent)
	}

	if len(metrics.RecentOrders) != 2 || metrics.RecentOrders[0].ID != "ORD-2" {
		t.Errorf("RecentOrders = %+v, want newest first", metrics.RecentOrders)
	}

	if len(metrics.BestSelling) == 0 || metrics.BestSelling[0].Name != "Veg Pakoda" || metrics.BestSelling[0].Sold != 2 {
		t.Errorf("BestSelling = %+v, want Veg Pakoda with 2 units first", metrics.BestSelling)
	}

	if len(metrics.OrdersByDay) != 5 {
		t.Fatalf("OrdersByDay has %d entries, want 5", len(metrics.OrdersByDay))
	}
	// The order from yesterday lands in the second-to-last bucket.
	if metrics.OrdersByDay[3].Count != 1 {
		t.Errorf("yesterday's bucket = %d, want 1", metrics.OrdersByDay[3].Count)
	}
}

func TestRevenueChangePercent(t *testing.T) {
	tests := []struct {
		thisWeek, lastWeek float64
		want               int
	}{
		{11980, 9800, 22},
		{9800, 11980, -18},
		{100, 0, 0},
		{0, 100, -100},
	}
	for _, tt := range tests {
		if got := revenueChangePercent(tt.thisWeek, tt.lastWeek); got != tt.want {
			t.Errorf("revenueChangePercent(%v, %v) = %d, want %d", tt.thisWeek, tt.lastWeek, got, tt.want)
		}
	}
}
