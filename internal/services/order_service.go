// internal/services/order_service.go
package services

import (
	"fmt"

	"github.com/orderdesk/backend/internal/models"
	"github.com/orderdesk/backend/internal/processor"
	"github.com/orderdesk/backend/internal/store"
	"github.com/orderdesk/backend/internal/validation"
)

type OrderService struct {
	store store.Store
}

type OrderItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	ClientID uint               `json:"client_id" validate:"required"`
	Status   string             `json:"status"`
	Items    []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ListOrdersParams maps the listing query onto the pure processor
// operations. A zero SortKey leaves the store's id order untouched.
type ListOrdersParams struct {
	SortKey processor.SortKey
	Reverse bool
	Filter  processor.Filter
}

func NewOrderService(s store.Store) *OrderService {
	return &OrderService{store: s}
}

// CreateOrder captures each item's unit price from the product's current
// price, so the persisted order keeps its historical value if the product
// is repriced later.
func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*models.Order, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrValidation, err)
	}

	clients, err := s.store.GetClients()
	if err != nil {
		return nil, err
	}
	clientKnown := false
	for _, c := range clients {
		if c.ID == req.ClientID {
			clientKnown = true
			break
		}
	}
	if !clientKnown {
		return nil, fmt.Errorf("client %d: %w", req.ClientID, store.ErrNotFound)
	}

	products, err := s.store.GetProducts()
	if err != nil {
		return nil, err
	}
	productsByID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	order := models.NewOrder(req.ClientID, req.Status)
	for _, item := range req.Items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, store.ErrNotFound)
		}
		order.AddItem(product.ID, item.Quantity, product.Price)
	}

	if _, err := s.store.AddOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(params ListOrdersParams) ([]models.Order, error) {
	orders, err := s.store.GetOrders()
	if err != nil {
		return nil, err
	}

	orders = processor.FilterOrders(orders, params.Filter)

	if params.SortKey != "" {
		orders, err = processor.SortOrders(orders, params.SortKey, params.Reverse)
		if err != nil {
			return nil, err
		}
	}

	return orders, nil
}
