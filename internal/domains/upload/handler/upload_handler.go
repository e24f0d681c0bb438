package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"repomovil-backend/internal/domains/upload"
	"repomovil-backend/internal/shared/response"
)

type UploadHandler struct {
	service upload.Service
}

func NewUploadHandler(service upload.Service) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload handles POST /api/upload: a single multipart "file" field.
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file")
		return
	}

	f, err := header.Open()
	if err != nil {
		response.BadRequest(c, "unreadable file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.InternalServerError(c, "failed to read upload")
		return
	}

	result, err := h.service.Save(c.Request.Context(), &upload.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"url":      result.URL,
		"filename": result.Filename,
	})
}

func (h *UploadHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, upload.ErrMissingFile):
		response.BadRequest(c, "missing file")
	case errors.Is(err, upload.ErrNotImage):
		response.BadRequest(c, "only image uploads are allowed")
	case errors.Is(err, upload.ErrTooLarge):
		response.BadRequest(c, "file exceeds the size limit")
	default:
		response.InternalServerError(c, "internal server error")
	}
}
