package admin

import (
	"errors"

	"github.com/emily-flower/api/internal/http/response"
	"github.com/emily-flower/api/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadFile 文件上传
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.file_missing", nil)
		return
	}
	scene := c.DefaultPostForm("scene", "common")

	url, err := h.UploadService.SaveFile(file, scene)
	if err != nil {
		if errors.Is(err, service.ErrInvalidUpload) {
			respondError(c, response.CodeBadRequest, "error.upload_failed", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.upload_failed", err)
		return
	}

	response.Success(c, gin.H{
		"url":      url,
		"filename": file.Filename,
		"size":     file.Size,
	})
}
