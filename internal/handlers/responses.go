package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eyewear-catalog/internal/auth"
	"eyewear-catalog/internal/models"
	"eyewear-catalog/internal/query"
	"eyewear-catalog/internal/repository"
	"eyewear-catalog/internal/upload"
)

// Estructuras de respuesta comunes.
type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// writeError colapsa la taxonomía interna a un vocabulario externo
// fijo. Los fallos de autenticación comparten un único mensaje para no
// revelar qué comprobación falló; los de infraestructura se registran
// y salen como error genérico.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	var enumErr *models.ErrInvalidEnum
	switch {
	case errors.Is(err, query.ErrInvalidFilter), errors.As(err, &enumErr),
		errors.Is(err, upload.ErrInvalidFile):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "already exists"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, auth.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid authentication credentials"})
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
