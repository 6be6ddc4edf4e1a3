// internal/handlers/common.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/orderdesk/backend/internal/analyzer"
	"github.com/orderdesk/backend/internal/interchange"
	"github.com/orderdesk/backend/internal/processor"
	"github.com/orderdesk/backend/internal/store"
	"github.com/orderdesk/backend/internal/utils"
)

// respondServiceError maps service errors onto the response envelope.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		utils.ErrorResponse(c, 400, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, store.ErrNotFound):
		utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, store.ErrDuplicateEmail):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, processor.ErrUnknownSortKey),
		errors.Is(err, analyzer.ErrUnknownPeriod),
		errors.Is(err, interchange.ErrUnknownEntityKind):
		utils.BadRequestResponse(c, err.Error(), nil)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
