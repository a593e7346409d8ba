package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/suitter-labs/suitter-indexer/internal/api/shared/errors"
	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error. APIErrors raised
// by request validation are passed through as they are.
func respondValidationError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusUnprocessableEntity, apiErr)
		return
	}
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(err.Error()))
}

// respondServiceError maps a service error onto a status code
func respondServiceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrNotConnected):
		c.JSON(http.StatusServiceUnavailable, apierrors.NewServiceUnavailableError(message, err.Error()))
	case errors.Is(err, domain.ErrUnsupported):
		c.JSON(http.StatusNotImplemented, apierrors.NewNotImplementedError(message, err.Error()))
	case errors.Is(err, domain.ErrInvalidContent), errors.Is(err, domain.ErrInvalidObjectID):
		c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(err.Error()))
	default:
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusBadGateway, apierrors.NewUpstreamError(message, err.Error()))
	}
}

// respondInternalError responds with an internal server error
func respondInternalError(c *gin.Context, err error, message string) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("message", message))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}
