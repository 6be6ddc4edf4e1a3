// internal/models/order.go
package models

import (
	"time"

	"github.com/orderdesk/backend/internal/validation"
)

// OrderItem is a line of its parent order. The unit price is captured at
// order time and never re-fetched, so historical order values survive later
// product price changes. Items carry no identity outside their order; the
// row id is a storage detail.
type OrderItem struct {
	ID        uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   uint    `json:"-" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null;index"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null"`
}

func (i OrderItem) LineTotal() float64 {
	return float64(i.Quantity) * i.Price
}

type Order struct {
	ID        uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	ClientID  uint        `json:"client_id" gorm:"not null;index" validate:"required"`
	OrderDate time.Time   `json:"order_date" gorm:"not null"`
	Status    string      `json:"status" gorm:"size:50;not null"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" validate:"required,min=1"`
}

// NewOrder builds an unpersisted order dated now. An empty status defaults
// to OrderStatusNew.
func NewOrder(clientID uint, status string) *Order {
	if status == "" {
		status = OrderStatusNew
	}
	return &Order{
		ClientID:  clientID,
		OrderDate: time.Now(),
		Status:    status,
	}
}

// Validate requires a client reference and at least one item. The client id
// is not resolved against the store here; referential integrity is the
// gateway's concern.
func (o *Order) Validate() error {
	return validation.Struct(o)
}

func (o *Order) TotalAmount() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.LineTotal()
	}
	return total
}

func (o *Order) AddItem(productID uint, quantity int, price float64) {
	o.Items = append(o.Items, OrderItem{
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	})
}

// RemoveItem drops every line referencing the product.
func (o *Order) RemoveItem(productID uint) {
	kept := o.Items[:0]
	for _, item := range o.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	o.Items = kept
}
