package handlers

import (
	"errors"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ommivivekanandsai/EduFolio/internal/storage"
	"github.com/ommivivekanandsai/EduFolio/pkg/apperrors"
)

// FileHandler serves objects written by the local storage backend.
// S3/R2 deployments hand out bucket URLs instead and never hit this.
type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, storageInstance storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     storageInstance,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/files/*path", h.ServeFile)
}

func (h *FileHandler) ServeFile(c *gin.Context) {
	objectPath := strings.TrimPrefix(c.Param("path"), "/")
	if objectPath == "" || strings.Contains(objectPath, "..") {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid file path"))
		return
	}

	reader, err := h.storage.Get(c.Request.Context(), objectPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			apperrors.HandleError(c, apperrors.NewNotFoundError("File not found"))
			return
		}
		apperrors.HandleError(c, apperrors.ErrStorageFailed(err))
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(path.Ext(objectPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are already out; nothing left to do but log
		_ = c.Error(err)
	}
}
