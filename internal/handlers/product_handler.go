package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eyewear-catalog/internal/models"
	"eyewear-catalog/internal/query"
	"eyewear-catalog/internal/repository"
)

// ProductStore es lo que el handler necesita del repositorio de
// productos; lo implementa repository.ProductRepository.
type ProductStore interface {
	Create(ctx context.Context, in models.ProductCreate) (*models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Find(ctx context.Context, filter query.ProductFilter, page query.Page) ([]models.Product, int64, error)
	Update(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	BulkUpdateStatus(ctx context.Context, ids []string, status string) (int64, error)
	Stats(ctx context.Context) (*repository.ProductStats, error)
}

type ProductHandler struct {
	repo   ProductStore
	logger *zap.Logger
}

func NewProductHandler(repo ProductStore, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{repo: repo, logger: logger}
}

type ProductListResponse struct {
	Total    int64            `json:"total"`
	Products []models.Product `json:"products"`
}

// parseBoolParam interpreta un query param booleano opcional.
func parseBoolParam(c *gin.Context, name string) (*bool, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " value"})
		return nil, false
	}
	return &v, true
}

// parseFloatParam interpreta un query param numérico opcional.
func parseFloatParam(c *gin.Context, name string) (*float64, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " value"})
		return nil, false
	}
	return &v, true
}

func parsePage(c *gin.Context, defaultLimit int64) (query.Page, bool) {
	skip, err := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid skip value"})
		return query.Page{}, false
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", strconv.FormatInt(defaultLimit, 10)), 10, 64)
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit value"})
		return query.Page{}, false
	}
	sortOrder, err := strconv.Atoi(c.DefaultQuery("sort_order", "-1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid sort_order value"})
		return query.Page{}, false
	}
	return query.Page{
		Skip:      skip,
		Limit:     limit,
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: sortOrder,
	}, true
}

// GET /api/products
// El listado público filtra por status=active salvo que el cliente
// pida otro estado explícitamente.
func (h *ProductHandler) List(c *gin.Context) {
	isFeatured, ok := parseBoolParam(c, "is_featured")
	if !ok {
		return
	}
	isOnSale, ok := parseBoolParam(c, "is_on_sale")
	if !ok {
		return
	}
	priceMin, ok := parseFloatParam(c, "price_min")
	if !ok {
		return
	}
	priceMax, ok := parseFloatParam(c, "price_max")
	if !ok {
		return
	}
	page, ok := parsePage(c, query.DefaultLimit)
	if !ok {
		return
	}

	filter := query.ProductFilter{
		Collection: c.Query("collection"),
		Gender:     c.Query("gender"),
		Type:       c.Query("type"),
		IsFeatured: isFeatured,
		IsOnSale:   isOnSale,
		Status:     c.DefaultQuery("status", models.StatusActive),
		PriceMin:   priceMin,
		PriceMax:   priceMax,
		Search:     c.Query("search"),
	}

	products, total, err := h.repo.Find(c.Request.Context(), filter, page)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, ProductListResponse{Total: total, Products: products})
}

// GET /api/products/featured
func (h *ProductHandler) Featured(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "8"), 10, 64)
	if err != nil || limit < 1 || limit > 20 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit value"})
		return
	}

	featured := true
	filter := query.ProductFilter{IsFeatured: &featured, Status: models.StatusActive}
	products, _, err := h.repo.Find(c.Request.Context(), filter, query.Page{Limit: limit})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/products/search?q=term
func (h *ProductHandler) Search(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "q is required"})
		return
	}
	page, ok := parsePage(c, query.DefaultLimit)
	if !ok {
		return
	}

	filter := query.ProductFilter{Search: term, Status: models.StatusActive}
	products, _, err := h.repo.Find(c.Request.Context(), filter, page)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/products/collection/:name
func (h *ProductHandler) ByCollection(c *gin.Context) {
	page, ok := parsePage(c, query.DefaultLimit)
	if !ok {
		return
	}

	filter := query.ProductFilter{Collection: c.Param("name"), Status: models.StatusActive}
	products, _, err := h.repo.Find(c.Request.Context(), filter, page)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// POST /api/products (admin)
func (h *ProductHandler) Create(c *gin.Context) {
	var in models.ProductCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := in.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.repo.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("product created",
		zap.String("product_id", product.ID),
		zap.String("sku", product.SKU),
		zap.String("admin", CurrentAdminUsername(c)),
	)
	c.JSON(http.StatusCreated, product)
}

// PUT /api/products/:id (admin)
func (h *ProductHandler) Update(c *gin.Context) {
	var in models.ProductUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if err := in.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(in.SetDocument()) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no valid fields to update"})
		return
	}

	product, err := h.repo.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("product updated",
		zap.String("product_id", product.ID),
		zap.String("admin", CurrentAdminUsername(c)),
	)
	c.JSON(http.StatusOK, product)
}

// DELETE /api/products/:id (admin)
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("product deleted",
		zap.String("product_id", id),
		zap.String("admin", CurrentAdminUsername(c)),
	)
	c.JSON(http.StatusOK, SuccessResponse{Message: "product deleted"})
}

// GET /api/admin/products
// El listado de administración no aplica ningún filtro por defecto y
// ordena por última modificación.
func (h *ProductHandler) AdminList(c *gin.Context) {
	page, ok := parsePage(c, query.MaxLimit)
	if !ok {
		return
	}
	if _, set := c.GetQuery("sort_by"); !set {
		page.SortBy = "updated_at"
	}

	products, total, err := h.repo.Find(c.Request.Context(), query.ProductFilter{}, page)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, ProductListResponse{Total: total, Products: products})
}

// PUT /api/admin/products/:id/status?status=active
func (h *ProductHandler) UpdateStatus(c *gin.Context) {
	status := c.Query("status")
	if !models.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status"})
		return
	}

	update := models.ProductUpdate{Status: &status}
	if _, err := h.repo.Update(c.Request.Context(), c.Param("id"), update); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("product status updated",
		zap.String("product_id", c.Param("id")),
		zap.String("status", status),
		zap.String("admin", CurrentAdminUsername(c)),
	)
	c.JSON(http.StatusOK, SuccessResponse{Message: "product status updated"})
}

type bulkStatusRequest struct {
	ProductIDs []string `json:"product_ids" binding:"required,min=1"`
	Status     string   `json:"status" binding:"required"`
}

// PUT /api/admin/products/bulk/status
func (h *ProductHandler) BulkUpdateStatus(c *gin.Context) {
	var req bulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status"})
		return
	}

	updated, err := h.repo.BulkUpdateStatus(c.Request.Context(), req.ProductIDs, req.Status)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("bulk status update",
		zap.Int64("updated", updated),
		zap.String("status", req.Status),
		zap.String("admin", CurrentAdminUsername(c)),
	)
	c.JSON(http.StatusOK, gin.H{
		"message":       "products updated",
		"updated_count": updated,
	})
}

// GET /api/admin/stats
func (h *ProductHandler) Stats(c *gin.Context) {
	stats, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
