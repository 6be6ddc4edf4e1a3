// internal/store/gorm.go
package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/orderdesk/backend/internal/database"
	"github.com/orderdesk/backend/internal/models"
)

// GormStore persists entities in a relational database through gorm. It
// works against either configured driver (postgres or sqlite).
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) AddClient(c *models.Client) (uint, error) {
	if err := c.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if c.RegistrationDate.IsZero() {
		c.RegistrationDate = time.Now()
	}
	c.ID = 0

	if err := s.db.Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert client: %w", err)
	}
	return c.ID, nil
}

func (s *GormStore) AddProduct(p *models.Product) (uint, error) {
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	p.ID = 0
	if err := s.db.Create(p).Error; err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return p.ID, nil
}

func (s *GormStore) AddOrder(o *models.Order) (uint, error) {
	if err := o.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	o.ID = 0

	// The order row and its item rows land atomically.
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(o).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		for i := range o.Items {
			o.Items[i].ID = 0
			o.Items[i].OrderID = o.ID
		}
		if err := tx.Create(&o.Items).Error; err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return o.ID, nil
}

func (s *GormStore) GetClients() ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.Order("id").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("fetch clients: %w", err)
	}
	return clients, nil
}

func (s *GormStore) GetProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}

func (s *GormStore) GetOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.id")
	}).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}

func (s *GormStore) Reset() error {
	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.OrderItem{}, &models.Order{}, &models.Product{}, &models.Client{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("reset store: %w", err)
			}
		}
		return nil
	})
}
