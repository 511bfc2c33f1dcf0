package http

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pushpakoirala/portfolio-api/internal/application/service"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

var allowedUploadFolders = map[string]bool{
	"images":  true,
	"photos":  true,
	"resumes": true,
}

type UploadHandler struct {
	uploader service.Uploader
}

func NewUploadHandler(uploader service.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload stores a multipart file and returns its public URL. The admin UI
// puts that URL into image_url / profile_photo / resume_url fields.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("a file is required", err))
		return
	}

	folder := c.PostForm("folder")
	if folder == "" {
		folder = "images"
	}
	if !allowedUploadFolders[folder] {
		c.Error(apperror.NewInvalidInput("folder must be one of images, photos, resumes", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open uploaded file", err))
		return
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	publicID := strings.TrimSuffix(filepath.Base(fileHeader.Filename), ext) + "-" + uuid.NewString()[:8]

	url, err := h.uploader.Upload(c.Request.Context(), file, folder, publicID)
	if err != nil {
		c.Error(apperror.NewInternal("failed to store uploaded file", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
