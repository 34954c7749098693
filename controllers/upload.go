package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kevinlim605/TechShop/apperr"
	"github.com/kevinlim605/TechShop/config"
	"github.com/kevinlim605/TechShop/logger"
)

// UploadImage handles POST /api/upload (admin). Stores the multipart
// "image" file under the upload dir and returns its public path.
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Validation, "No image file provided", err))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		apperr.Write(c, apperr.New(apperr.Validation, "Images Only"))
		return
	}

	dir := config.Get().UploadDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to store image", err))
		return
	}

	name := "image-" + uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		logger.L().Error("failed to save upload", zap.Error(err))
		apperr.Write(c, apperr.Wrap(apperr.Internal, "Failed to store image", err))
		return
	}

	c.String(http.StatusOK, "/uploads/"+name)
}
