// internal/analyzer/analyzer.go
//
// Read-side aggregation over collections already materialized from the
// store. Every function is pure: inputs come in as parameters, results are
// freshly allocated, nothing is cached between calls.
package analyzer

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/orderdesk/backend/internal/models"
)

const (
	DefaultTopClientsLimit  = 5
	DefaultTopProductsLimit = 10
)

type TopClient struct {
	Client     models.Client `json:"client"`
	OrderCount int           `json:"order_count"`
	TotalSpent float64       `json:"total_spent"`
}

// TopClientsByOrders ranks clients by order count, descending. Ties break by
// client id ascending. Order rows referencing a client id with no client
// record are skipped rather than failing the ranking. A non-positive limit
// falls back to DefaultTopClientsLimit.
func TopClientsByOrders(clients []models.Client, orders []models.Order, limit int) []TopClient {
	if limit <= 0 {
		limit = DefaultTopClientsLimit
	}

	orderCounts := make(map[uint]int)
	totalSpent := make(map[uint]float64)
	for _, o := range orders {
		orderCounts[o.ClientID]++
		totalSpent[o.ClientID] += o.TotalAmount()
	}

	clientsByID := make(map[uint]models.Client, len(clients))
	for _, c := range clients {
		clientsByID[c.ID] = c
	}

	ids := make([]uint, 0, len(orderCounts))
	for id := range orderCounts {
		if _, ok := clientsByID[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		if orderCounts[ids[i]] != orderCounts[ids[j]] {
			return orderCounts[ids[i]] > orderCounts[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if len(ids) > limit {
		ids = ids[:limit]
	}

	top := make([]TopClient, 0, len(ids))
	for _, id := range ids {
		top = append(top, TopClient{
			Client:     clientsByID[id],
			OrderCount: orderCounts[id],
			TotalSpent: totalSpent[id],
		})
	}
	return top
}

type SalesStatistics struct {
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
	TotalClients  int     `json:"total_clients"`
	TotalProducts int     `json:"total_products"`
}

// ComputeSalesStatistics returns overall sales figures. The average order
// value is 0 for an empty order set.
func ComputeSalesStatistics(clients []models.Client, products []models.Product, orders []models.Order) SalesStatistics {
	stats := SalesStatistics{
		TotalOrders:   len(orders),
		TotalClients:  len(clients),
		TotalProducts: len(products),
	}

	for _, o := range orders {
		stats.TotalRevenue += o.TotalAmount()
	}
	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}

	return stats
}

type ProductSales struct {
	Product      models.Product `json:"product"`
	QuantitySold int            `json:"quantity_sold"`
}

// TopProductsByQuantity sums item quantities per product across all orders
// and ranks descending, ties by product id ascending. Items referencing an
// unknown product id are skipped.
func TopProductsByQuantity(products []models.Product, orders []models.Order, limit int) []ProductSales {
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	quantities := make(map[uint]int)
	for _, o := range orders {
		for _, item := range o.Items {
			quantities[item.ProductID] += item.Quantity
		}
	}

	productsByID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	ids := make([]uint, 0, len(quantities))
	for id := range quantities {
		if _, ok := productsByID[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		if quantities[ids[i]] != quantities[ids[j]] {
			return quantities[ids[i]] > quantities[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if len(ids) > limit {
		ids = ids[:limit]
	}

	top := make([]ProductSales, 0, len(ids))
	for _, id := range ids {
		top = append(top, ProductSales{Product: productsByID[id], QuantitySold: quantities[id]})
	}
	return top
}

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

var ErrUnknownPeriod = errors.New("unknown grouping period")

type RevenueBucket struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

// SalesOverTime groups order revenue by calendar period. Bucket labels sort
// chronologically: 2006-01-02 for days, 2006-W02 for ISO weeks, 2006-01 for
// months. Buckets are returned in chronological order.
func SalesOverTime(orders []models.Order, period Period) ([]RevenueBucket, error) {
	var label func(t time.Time) string

	switch period {
	case PeriodDay:
		label = func(t time.Time) string { return t.Format("2006-01-02") }
	case PeriodWeek:
		label = func(t time.Time) string {
			year, week := t.ISOWeek()
			return fmt.Sprintf("%d-W%02d", year, week)
		}
	case PeriodMonth:
		label = func(t time.Time) string { return t.Format("2006-01") }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}

	revenue := make(map[string]float64)
	for _, o := range orders {
		revenue[label(o.OrderDate)] += o.TotalAmount()
	}

	labels := make([]string, 0, len(revenue))
	for l := range revenue {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	buckets := make([]RevenueBucket, 0, len(labels))
	for _, l := range labels {
		buckets = append(buckets, RevenueBucket{Period: l, Revenue: revenue[l]})
	}
	return buckets, nil
}
