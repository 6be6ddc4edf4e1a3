// internal/store/memory.go
package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/orderdesk/backend/internal/models"
)

// MemoryStore keeps all entities in process memory. It backs tests and
// zero-dependency embedding, and serializes writes with a mutex like any
// conforming store must.
type MemoryStore struct {
	mtx sync.Mutex

	clients  map[uint]models.Client
	products map[uint]models.Product
	orders   map[uint]models.Order

	nextClientID  uint
	nextProductID uint
	nextOrderID   uint
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		clients:       make(map[uint]models.Client),
		products:      make(map[uint]models.Product),
		orders:        make(map[uint]models.Order),
		nextClientID:  1,
		nextProductID: 1,
		nextOrderID:   1,
	}
}

func (s *MemoryStore) AddClient(c *models.Client) (uint, error) {
	if err := c.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, existing := range s.clients {
		if strings.EqualFold(existing.Email, c.Email) {
			return 0, ErrDuplicateEmail
		}
	}

	if c.RegistrationDate.IsZero() {
		c.RegistrationDate = time.Now()
	}
	c.ID = s.nextClientID
	s.nextClientID++
	s.clients[c.ID] = *c
	return c.ID, nil
}

func (s *MemoryStore) AddProduct(p *models.Product) (uint, error) {
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	p.ID = s.nextProductID
	s.nextProductID++
	s.products[p.ID] = *p
	return p.ID, nil
}

func (s *MemoryStore) AddOrder(o *models.Order) (uint, error) {
	if err := o.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	o.ID = s.nextOrderID
	s.nextOrderID++

	stored := *o
	stored.Items = make([]models.OrderItem, len(o.Items))
	copy(stored.Items, o.Items)
	for i := range stored.Items {
		stored.Items[i].OrderID = stored.ID
	}
	s.orders[stored.ID] = stored
	return stored.ID, nil
}

func (s *MemoryStore) GetClients() ([]models.Client, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	clients := make([]models.Client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })
	return clients, nil
}

func (s *MemoryStore) GetProducts() ([]models.Product, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	products := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (s *MemoryStore) GetOrders() ([]models.Order, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	orders := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		// Copy the item slice so callers cannot reach stored state.
		items := make([]models.OrderItem, len(o.Items))
		copy(items, o.Items)
		o.Items = items
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (s *MemoryStore) Reset() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.clients = make(map[uint]models.Client)
	s.products = make(map[uint]models.Product)
	s.orders = make(map[uint]models.Order)
	s.nextClientID = 1
	s.nextProductID = 1
	s.nextOrderID = 1
	return nil
}
