// internal/models/client.go
package models

import (
	"time"

	"github.com/orderdesk/backend/internal/validation"
)

type Client struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string    `json:"name" gorm:"size:255;not null" validate:"required"`
	Email            string    `json:"email" gorm:"size:255;not null;uniqueIndex" validate:"required,email"`
	Phone            string    `json:"phone" gorm:"size:32;not null" validate:"required,phone"`
	Address          string    `json:"address" gorm:"type:text;not null" validate:"required"`
	RegistrationDate time.Time `json:"registration_date" gorm:"not null"`
}

// NewClient builds an unpersisted client with the registration date set to
// the creation time.
func NewClient(name, email, phone, address string) *Client {
	return &Client{
		Name:             name,
		Email:            email,
		Phone:            phone,
		Address:          address,
		RegistrationDate: time.Now(),
	}
}

// Validate is deterministic over the current field values and has no side
// effects. It does not consult the store.
func (c *Client) Validate() error {
	return validation.Struct(c)
}
