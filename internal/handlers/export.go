// internal/handlers/export.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderdesk/backend/internal/interchange"
	"github.com/orderdesk/backend/internal/services"
	"github.com/orderdesk/backend/internal/utils"
)

type ExportHandler struct {
	exportService *services.ExportService
}

func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// GET /export/json
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	doc, err := h.exportService.ExportDocument()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// POST /import/json
func (h *ExportHandler) ImportJSON(c *gin.Context) {
	var doc interchange.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.BadRequestResponse(c, "Invalid interchange document", err.Error())
		return
	}

	if err := h.exportService.ImportDocument(&doc); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"imported": gin.H{
			"clients":  len(doc.Clients),
			"products": len(doc.Products),
			"orders":   len(doc.Orders),
		},
	})
}

// GET /export/csv?entity=clients|products|orders
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	kind := interchange.EntityKind(c.Query("entity"))
	switch kind {
	case interchange.KindClients, interchange.KindProducts, interchange.KindOrders:
	default:
		utils.BadRequestResponse(c, fmt.Sprintf("unknown entity kind: %q", kind), nil)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/csv")
	c.Writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", kind))

	if err := h.exportService.WriteCSV(kind, c.Writer); err != nil {
		c.Writer.Header().Del("Content-Disposition")
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
