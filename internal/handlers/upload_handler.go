package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eyewear-catalog/internal/upload"
)

type UploadHandler struct {
	uploads *upload.Service
	logger  *zap.Logger
}

func NewUploadHandler(uploads *upload.Service, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{uploads: uploads, logger: logger}
}

// POST /api/admin/upload?category=products
func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no file uploaded"})
		return
	}
	category := c.DefaultQuery("category", "products")

	url, err := h.uploads.Save(fh, category)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("image uploaded",
		zap.String("url", url),
		zap.String("admin", CurrentAdminUsername(c)),
	)
	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

// POST /api/admin/upload/multiple?category=products
func (h *UploadHandler) UploadMultiple(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no files uploaded"})
		return
	}
	category := c.DefaultQuery("category", "products")

	urls, err := h.uploads.SaveAll(files, category)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Info("images uploaded",
		zap.Int("count", len(urls)),
		zap.String("admin", CurrentAdminUsername(c)),
	)
	c.JSON(http.StatusOK, gin.H{"image_urls": urls})
}
