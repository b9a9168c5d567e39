package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eyewear-catalog/internal/auth"
	"eyewear-catalog/internal/handlers"
)

// RequireAdmin exige un token Bearer válido y deja la cuenta resuelta
// en el contexto. Todo fallo sale como el mismo 401 genérico: nunca se
// distingue cabecera ausente, token malo o cuenta desactivada.
func RequireAdmin(service *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortUnauthenticated(c)
			return
		}

		admin, err := service.VerifyToken(c.Request.Context(), token)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set(handlers.AdminContextKey, admin)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, handlers.ErrorResponse{
		Error: "invalid authentication credentials",
	})
}
