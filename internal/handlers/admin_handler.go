package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eyewear-catalog/internal/auth"
	"eyewear-catalog/internal/models"
)

// AdminContextKey es la clave bajo la que el middleware deja la cuenta
// autenticada en el contexto de gin.
const AdminContextKey = "current_admin"

// CurrentAdmin devuelve la cuenta autenticada de la petición, si la hay.
func CurrentAdmin(c *gin.Context) (*models.Admin, bool) {
	v, ok := c.Get(AdminContextKey)
	if !ok {
		return nil, false
	}
	admin, ok := v.(*models.Admin)
	return admin, ok
}

// CurrentAdminUsername es un atajo para los logs de auditoría.
func CurrentAdminUsername(c *gin.Context) string {
	if admin, ok := CurrentAdmin(c); ok {
		return admin.Username
	}
	return ""
}

type AdminHandler struct {
	service *auth.Service
	logger  *zap.Logger
}

func NewAdminHandler(service *auth.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{service: service, logger: logger}
}

// POST /api/admin/register
func (h *AdminHandler) Register(c *gin.Context) {
	var in models.AdminCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	admin, err := h.service.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("admin registered",
		zap.String("admin_id", admin.ID),
		zap.String("username", admin.Username),
		zap.String("role", admin.Role),
	)
	c.JSON(http.StatusCreated, admin)
}

// POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var in models.AdminLogin
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.service.Login(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("admin logged in", zap.String("username", in.Username))
	c.JSON(http.StatusOK, token)
}

// GET /api/admin/me
func (h *AdminHandler) Me(c *gin.Context) {
	admin, ok := CurrentAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid authentication credentials"})
		return
	}
	c.JSON(http.StatusOK, admin)
}
