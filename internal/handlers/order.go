// internal/handlers/order.go
package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orderdesk/backend/internal/processor"
	"github.com/orderdesk/backend/internal/services"
	"github.com/orderdesk/backend/internal/utils"
	"github.com/orderdesk/backend/internal/validation"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GET /orders
//
// Supported query parameters: sort (date|amount|status), order (asc|desc),
// client_id, status, min_amount, max_amount, start_date, end_date
// (RFC 3339). Absent parameters impose no constraint.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	params := services.ListOrdersParams{
		SortKey: processor.SortKey(c.Query("sort")),
		Reverse: c.DefaultQuery("order", "asc") == "desc",
	}

	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		clientID, err := strconv.ParseUint(clientIDStr, 10, 64)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid client_id", nil)
			return
		}
		id := uint(clientID)
		params.Filter.ClientID = &id
	}

	if status := c.Query("status"); status != "" {
		params.Filter.Status = &status
	}

	if minStr := c.Query("min_amount"); minStr != "" {
		min, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid min_amount", nil)
			return
		}
		params.Filter.MinAmount = &min
	}

	if maxStr := c.Query("max_amount"); maxStr != "" {
		max, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid max_amount", nil)
			return
		}
		params.Filter.MaxAmount = &max
	}

	if startStr := c.Query("start_date"); startStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid start_date", nil)
			return
		}
		params.Filter.StartDate = &start
	}

	if endStr := c.Query("end_date"); endStr != "" {
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid end_date", nil)
			return
		}
		params.Filter.EndDate = &end
	}

	orders, err := h.orderService.ListOrders(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"orders": orders,
	})
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if fieldErrors := validation.Errors(validation.Struct(&req)); len(fieldErrors) > 0 {
		utils.ValidationErrorResponse(c, fieldErrors)
		return
	}

	order, err := h.orderService.CreateOrder(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"order": order,
	})
}
