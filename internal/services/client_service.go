// internal/services/client_service.go
package services

import (
	"fmt"

	"github.com/orderdesk/backend/internal/models"
	"github.com/orderdesk/backend/internal/store"
	"github.com/orderdesk/backend/internal/validation"
)

type ClientService struct {
	store store.Store
}

type CreateClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,phone"`
	Address string `json:"address" validate:"required"`
}

func NewClientService(s store.Store) *ClientService {
	return &ClientService{store: s}
}

func (s *ClientService) CreateClient(req *CreateClientRequest) (*models.Client, error) {
	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrValidation, err)
	}

	client := models.NewClient(req.Name, req.Email, req.Phone, req.Address)
	if _, err := s.store.AddClient(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) ListClients() ([]models.Client, error) {
	return s.store.GetClients()
}
