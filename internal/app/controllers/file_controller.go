package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edufund/scholarhub/internal/app/models/dto"
	"github.com/edufund/scholarhub/internal/pkg/filestorage"
)

// FileController serves stored blobs through signed download URLs
type FileController struct {
	storage *filestorage.LocalStorage
}

// NewFileController creates a new FileController
func NewFileController(storage *filestorage.LocalStorage) *FileController {
	return &FileController{storage: storage}
}

// Download godoc
// @Summary Download a stored file
// @Description Serve a blob addressed by its storage path. The expires and sig query parameters must match a previously issued signed URL.
// @Tags files
// @Produce octet-stream
// @Param path path string true "Storage path"
// @Param expires query int true "Expiry unix timestamp"
// @Param sig query string true "HMAC signature"
// @Success 200 {file} binary
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /files/{path} [get]
func (c *FileController) Download(ctx *gin.Context) {
	storagePath := strings.TrimPrefix(ctx.Param("path"), "/")
	expires := ctx.Query("expires")
	sig := ctx.Query("sig")

	if err := c.storage.VerifySignedPath(storagePath, expires, sig); err != nil {
		code := dto.ErrorCodeInvalidToken
		message := "Invalid file signature"
		if errors.Is(err, filestorage.ErrSignatureExpired) {
			code = dto.ErrorCodeExpiredToken
			message = "File link expired"
		}
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
		return
	}

	fullPath, err := c.storage.FullPath(storagePath)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "File not found")))
		return
	}

	ctx.File(fullPath)
}
