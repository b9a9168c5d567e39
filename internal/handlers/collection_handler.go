package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eyewear-catalog/internal/models"
)

// CollectionStore es lo que el handler necesita del repositorio de
// colecciones; lo implementa repository.CollectionRepository.
type CollectionStore interface {
	Create(ctx context.Context, in models.CollectionCreate) (*models.Collection, error)
	FindByID(ctx context.Context, id string) (*models.Collection, error)
	FindBySlug(ctx context.Context, slug string) (*models.Collection, error)
	Find(ctx context.Context, isActive *bool, skip, limit int64) ([]models.Collection, error)
	Update(ctx context.Context, id string, update models.CollectionUpdate) (*models.Collection, error)
	Delete(ctx context.Context, id string) error
}

type CollectionHandler struct {
	repo   CollectionStore
	logger *zap.Logger
}

func NewCollectionHandler(repo CollectionStore, logger *zap.Logger) *CollectionHandler {
	return &CollectionHandler{repo: repo, logger: logger}
}

// GET /api/collections
func (h *CollectionHandler) List(c *gin.Context) {
	isActive, ok := parseBoolParam(c, "is_active")
	if !ok {
		return
	}
	skip, err := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid skip value"})
		return
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit value"})
		return
	}

	collections, err := h.repo.Find(c.Request.Context(), isActive, skip, limit)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, collections)
}

// GET /api/collections/active
func (h *CollectionHandler) Active(c *gin.Context) {
	active := true
	collections, err := h.repo.Find(c.Request.Context(), &active, 0, 0)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, collections)
}

// GET /api/collections/:id
func (h *CollectionHandler) Get(c *gin.Context) {
	collection, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, collection)
}

// GET /api/collections/slug/:slug
func (h *CollectionHandler) GetBySlug(c *gin.Context) {
	collection, err := h.repo.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, collection)
}

// POST /api/collections (admin)
func (h *CollectionHandler) Create(c *gin.Context) {
	var in models.CollectionCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	collection, err := h.repo.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("collection created",
		zap.String("collection_id", collection.ID),
		zap.String("slug", collection.Slug),
		zap.String("admin", CurrentAdminUsername(c)),
	)
	c.JSON(http.StatusCreated, collection)
}

// PUT /api/collections/:id (admin)
func (h *CollectionHandler) Update(c *gin.Context) {
	var in models.CollectionUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(in.SetDocument()) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no valid fields to update"})
		return
	}

	collection, err := h.repo.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("collection updated",
		zap.String("collection_id", collection.ID),
		zap.String("admin", CurrentAdminUsername(c)),
	)
	c.JSON(http.StatusOK, collection)
}

// DELETE /api/collections/:id (admin)
func (h *CollectionHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("collection deleted",
		zap.String("collection_id", id),
		zap.String("admin", CurrentAdminUsername(c)),
	)
	c.JSON(http.StatusOK, SuccessResponse{Message: "collection deleted"})
}
