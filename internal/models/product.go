// internal/models/product.go
package models

import (
	"github.com/orderdesk/backend/internal/validation"
)

type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"size:255;not null" validate:"required"`
	Price       float64 `json:"price" gorm:"not null" validate:"required,gt=0"`
	Category    string  `json:"category" gorm:"size:100;index"`
	Description string  `json:"description" gorm:"type:text"`
}

func (p *Product) Validate() error {
	return validation.Struct(p)
}
