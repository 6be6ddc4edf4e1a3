// internal/processor/processor.go
package processor

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/orderdesk/backend/internal/models"
)

type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
	SortByStatus SortKey = "status"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

// SortOrders returns a sorted copy of orders. The sort is stable: orders
// comparing equal keep their original relative position, so repeated
// refreshes over the same data render identically.
func SortOrders(orders []models.Order, key SortKey, reverse bool) ([]models.Order, error) {
	var less func(a, b *models.Order) bool

	switch key {
	case SortByDate:
		less = func(a, b *models.Order) bool { return a.OrderDate.Before(b.OrderDate) }
	case SortByAmount:
		less = func(a, b *models.Order) bool { return a.TotalAmount() < b.TotalAmount() }
	case SortByStatus:
		less = func(a, b *models.Order) bool { return a.Status < b.Status }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortKey, key)
	}

	sorted := make([]models.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		if reverse {
			return less(&sorted[j], &sorted[i])
		}
		return less(&sorted[i], &sorted[j])
	})

	return sorted, nil
}

// Filter enumerates the recognized order criteria. Nil fields impose no
// constraint; set fields combine with logical AND. All bounds are inclusive.
type Filter struct {
	ClientID  *uint
	Status    *string
	MinAmount *float64
	MaxAmount *float64
	StartDate *time.Time
	EndDate   *time.Time
}

// FilterOrders never mutates its input.
func FilterOrders(orders []models.Order, f Filter) []models.Order {
	filtered := make([]models.Order, 0, len(orders))

	for _, o := range orders {
		if f.ClientID != nil && o.ClientID != *f.ClientID {
			continue
		}
		if f.Status != nil && !strings.EqualFold(o.Status, *f.Status) {
			continue
		}
		if f.MinAmount != nil && o.TotalAmount() < *f.MinAmount {
			continue
		}
		if f.MaxAmount != nil && o.TotalAmount() > *f.MaxAmount {
			continue
		}
		if f.StartDate != nil && o.OrderDate.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && o.OrderDate.After(*f.EndDate) {
			continue
		}
		filtered = append(filtered, o)
	}

	return filtered
}
