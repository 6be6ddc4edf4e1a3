// internal/handlers/analytics.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orderdesk/backend/internal/analyzer"
	"github.com/orderdesk/backend/internal/services"
	"github.com/orderdesk/backend/internal/utils"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GET /analytics/top-clients
func (h *AnalyticsHandler) GetTopClients(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	topClients, err := h.analyticsService.TopClients(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"top_clients": topClients,
	})
}

// GET /analytics/statistics
func (h *AnalyticsHandler) GetStatistics(c *gin.Context) {
	stats, err := h.analyticsService.Statistics()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"statistics": stats,
	})
}

// GET /analytics/top-products
func (h *AnalyticsHandler) GetTopProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	topProducts, err := h.analyticsService.TopProducts(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"top_products": topProducts,
	})
}

// GET /analytics/network
func (h *AnalyticsHandler) GetClientNetwork(c *gin.Context) {
	graph, err := h.analyticsService.ClientNetwork()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"network": graph,
	})
}

// GET /analytics/sales-over-time
func (h *AnalyticsHandler) GetSalesOverTime(c *gin.Context) {
	period := analyzer.Period(c.DefaultQuery("period", string(analyzer.PeriodMonth)))

	buckets, err := h.analyticsService.SalesOverTime(period)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"period":  period,
		"buckets": buckets,
	})
}
