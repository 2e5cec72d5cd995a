package productcontroller

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/azozal-iraqi/Skystore/models"
	"github.com/azozal-iraqi/Skystore/store"
	"github.com/azozal-iraqi/Skystore/uploads"
)

// CreateProduct creates a catalog entry from a multipart form carrying one
// image file. Name and price are required; discount and stock default to 0.
func CreateProduct(s *store.Store, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No image uploaded"})
			return
		}

		name := strings.TrimSpace(c.PostForm("name"))
		price := c.PostForm("price")
		if name == "" || price == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing name or price"})
			return
		}

		imagePath, err := uploads.Save(file, uploadsDir, func(f *multipart.FileHeader, dst string) error {
			return c.SaveUploadedFile(f, dst)
		})
		switch {
		case errors.Is(err, uploads.ErrNotImage), errors.Is(err, uploads.ErrTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		case err != nil:
			zap.L().Error("product: image save failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save image"})
			return
		}

		product := models.Product{
			Name:     name,
			Price:    cast.ToInt(price),
			Discount: cast.ToInt(c.PostForm("discount")),
			Stock:    cast.ToInt(c.PostForm("stock")),
			Image:    imagePath,
		}
		if err := s.CreateProduct(&product); err != nil {
			zap.L().Error("product: create failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}
