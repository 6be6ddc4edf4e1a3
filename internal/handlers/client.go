// internal/handlers/client.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/orderdesk/backend/internal/services"
	"github.com/orderdesk/backend/internal/utils"
	"github.com/orderdesk/backend/internal/validation"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// GET /clients
func (h *ClientHandler) GetClients(c *gin.Context) {
	clients, err := h.clientService.ListClients()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"clients": clients,
	})
}

// POST /clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req services.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if fieldErrors := validation.Errors(validation.Struct(&req)); len(fieldErrors) > 0 {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	client, err := h.clientService.CreateClient(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"client": client,
	})
}
