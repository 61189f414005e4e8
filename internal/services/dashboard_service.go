package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rahulsingh558/the-piquant-pan/internal/models"
	"github.com/rahulsingh558/the-piquant-pan/internal/repository"
)

const (
	recentOrdersLimit = 5
	bestSellingLimit  = 4
	chartDays         = 5
)

// DashboardService aggregates the order history into the admin panel metrics.
type DashboardService interface {
	Metrics(ctx context.Context) (*models.DashboardMetrics, error)
}

type dashboardService struct {
	orderRepo repository.OrderRepository
	now       func() time.Time
}

func NewDashboardService(orderRepo repository.OrderRepository) DashboardService {
	return &dashboardService{orderRepo: orderRepo, now: time.Now}
}

func (s *dashboardService) Metrics(ctx context.Context) (*models.DashboardMetrics, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	metrics := &models.DashboardMetrics{
		TotalOrders: len(orders),
	}

	customers := make(map[string]struct{})
	unitsSold := make(map[string]int)
	dayCounts := make(map[string]int)

	for _, order := range orders {
		metrics.TotalRevenue += order.Total
		if order.Customer.Phone != "" {
			customers[order.Customer.Phone] = struct{}{}
		}

		placedAt, perr := time.Parse(time.RFC3339, order.Date)
		if perr == nil {
			switch {
			case placedAt.After(weekAgo):
				metrics.RevenueThisWeek += order.Total
			case placedAt.After(twoWeeksAgo):
				metrics.RevenueLastWeek += order.Total
			}
			dayCounts[placedAt.UTC().Format("2006-01-02")]++
		}

		for _, line := range order.Items {
			unitsSold[line.Name] += line.Quantity
		}
	}

	metrics.TotalCustomers = len(customers)
	metrics.RevenueChangePercent = revenueChangePercent(metrics.RevenueThisWeek, metrics.RevenueLastWeek)

	// Order counts per day, oldest first, covering the chart window.
	for i := chartDays - 1; i >= 0; i-- {
		day := now.UTC().AddDate(0, 0, -i)
		metrics.OrdersByDay = append(metrics.OrdersByDay, models.DayCount{
			Day:   day.Format("Mon"),
			Count: dayCounts[day.Format("2006-01-02")],
		})
	}

	// Orders are stored newest-first, so the recent list is a prefix.
	for i := 0; i < len(orders) && i < recentOrdersLimit; i++ {
		metrics.RecentOrders = append(metrics.RecentOrders, models.OrderSummary{
			ID:       orders[i].ID,
			Customer: orders[i].Customer.Name,
			Amount:   orders[i].Total,
		})
	}

	metrics.BestSelling = bestSelling(unitsSold, bestSellingLimit)
	return metrics, nil
}

func revenueChangePercent(thisWeek, lastWeek float64) int {
	if lastWeek == 0 {
		return 0
	}
	return int(math.Round((thisWeek - lastWeek) / lastWeek * 100))
}

func bestSelling(unitsSold map[string]int, limit int) []models.ItemSales {
	sales := make([]models.ItemSales, 0, len(unitsSold))
	for name, sold := range unitsSold {
		sales = append(sales, models.ItemSales{Name: name, Sold: sold})
	}
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].Sold != sales[j].Sold {
			return sales[i].Sold > sales[j].Sold
		}
		return sales[i].Name < sales[j].Name
	})
	if len(sales) > limit {
		sales = sales[:limit]
	}
	return sales
}
