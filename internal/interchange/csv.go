// internal/interchange/csv.go
package interchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/orderdesk/backend/internal/store"
)

type EntityKind string

const (
	KindClients  EntityKind = "clients"
	KindProducts EntityKind = "products"
	KindOrders   EntityKind = "orders"
)

var ErrUnknownEntityKind = errors.New("unknown entity kind")

// ExportCSV writes one entity kind as a header row plus one record per row.
// Order rows additionally carry the computed total_amount column.
func ExportCSV(s store.Store, kind EntityKind, w io.Writer) error {
	cw := csv.NewWriter(w)

	switch kind {
	case KindClients:
		clients, err := s.GetClients()
		if err != nil {
			return err
		}
		if err := cw.Write([]string{"id", "name", "email", "phone", "address", "registration_date"}); err != nil {
			return err
		}
		for _, c := range clients {
			if err := cw.Write([]string{
				formatID(c.ID), c.Name, c.Email, c.Phone, c.Address,
				c.RegistrationDate.Format(time.RFC3339),
			}); err != nil {
				return err
			}
		}

	case KindProducts:
		products, err := s.GetProducts()
		if err != nil {
			return err
		}
		if err := cw.Write([]string{"id", "name", "price", "category", "description"}); err != nil {
			return err
		}
		for _, p := range products {
			if err := cw.Write([]string{
				formatID(p.ID), p.Name, formatFloat(p.Price), p.Category, p.Description,
			}); err != nil {
				return err
			}
		}

	case KindOrders:
		orders, err := s.GetOrders()
		if err != nil {
			return err
		}
		if err := cw.Write([]string{"id", "client_id", "order_date", "status", "total_amount"}); err != nil {
			return err
		}
		for _, o := range orders {
			if err := cw.Write([]string{
				formatID(o.ID), formatID(o.ClientID),
				o.OrderDate.Format(time.RFC3339), o.Status,
				formatFloat(o.TotalAmount()),
			}); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownEntityKind, kind)
	}

	cw.Flush()
	return cw.Error()
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
