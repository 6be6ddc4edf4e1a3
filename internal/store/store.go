// internal/store/store.go
package store

import (
	"errors"

	"github.com/orderdesk/backend/internal/models"
)

var (
	// ErrValidation marks an entity that failed its own Validate at the
	// point of persistence; the write does not proceed.
	ErrValidation = errors.New("entity failed validation")

	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail maps the unique constraint on clients.email.
	ErrDuplicateEmail = errors.New("client email already registered")
)

// Store is the persistence boundary the core calls through. Add operations
// re-validate the entity, assign a generated identity, persist and return
// the identity. Get operations return full materialized collections in
// ascending id order; an order's items are eagerly loaded with it. Any
// conforming implementation satisfies the core; the store serializes its
// own concurrent writes.
type Store interface {
	AddClient(c *models.Client) (uint, error)
	AddProduct(p *models.Product) (uint, error)
	AddOrder(o *models.Order) (uint, error)

	GetClients() ([]models.Client, error)
	GetProducts() ([]models.Product, error)
	GetOrders() ([]models.Order, error)

	// Reset drops every persisted record. Used by bulk import, which
	// replaces the store contents wholesale.
	Reset() error
}
