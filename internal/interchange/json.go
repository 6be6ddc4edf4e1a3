// internal/interchange/json.go
package interchange

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/orderdesk/backend/internal/models"
	"github.com/orderdesk/backend/internal/store"
)

// Document is the bulk interchange format: three named arrays, each order
// embedding its items. Dates serialize as RFC 3339 text.
type Document struct {
	Clients  []models.Client  `json:"clients"`
	Products []models.Product `json:"products"`
	Orders   []models.Order   `json:"orders"`
}

// Export materializes the full entity set from the store.
func Export(s store.Store) (*Document, error) {
	clients, err := s.GetClients()
	if err != nil {
		return nil, fmt.Errorf("export clients: %w", err)
	}
	products, err := s.GetProducts()
	if err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}
	orders, err := s.GetOrders()
	if err != nil {
		return nil, fmt.Errorf("export orders: %w", err)
	}

	return &Document{Clients: clients, Products: products, Orders: orders}, nil
}

func ExportJSON(s store.Store, w io.Writer) error {
	doc, err := Export(s)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Import replaces the store contents with the document's records. Identities
// are regenerated by the store; the format does not guarantee id stability.
// Client and product references inside orders are carried through as-is,
// which lines up again when importing into a fresh store in export order.
func Import(s store.Store, doc *Document) error {
	if err := s.Reset(); err != nil {
		return err
	}

	for i := range doc.Clients {
		c := doc.Clients[i]
		if _, err := s.AddClient(&c); err != nil {
			return fmt.Errorf("import client %q: %w", c.Email, err)
		}
	}
	for i := range doc.Products {
		p := doc.Products[i]
		if _, err := s.AddProduct(&p); err != nil {
			return fmt.Errorf("import product %q: %w", p.Name, err)
		}
	}
	for i := range doc.Orders {
		o := doc.Orders[i]
		items := make([]models.OrderItem, len(o.Items))
		copy(items, o.Items)
		order := models.Order{
			ClientID:  o.ClientID,
			OrderDate: o.OrderDate,
			Status:    o.Status,
			Items:     items,
		}
		if _, err := s.AddOrder(&order); err != nil {
			return fmt.Errorf("import order for client %d: %w", o.ClientID, err)
		}
	}

	return nil
}

func ImportJSON(s store.Store, r io.Reader) error {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("decode interchange document: %w", err)
	}
	return Import(s, &doc)
}
