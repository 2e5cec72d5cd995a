package slidercontroller

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/azozal-iraqi/Skystore/store"
	"github.com/azozal-iraqi/Skystore/uploads"
)

// GetSlider returns the promo image paths in display order, degrading to an
// empty list on a storage read failure.
func GetSlider(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		images, err := s.SliderImages()
		if err != nil {
			zap.L().Error("slider: list failed", zap.Error(err))
			c.JSON(http.StatusOK, []string{})
			return
		}
		c.JSON(http.StatusOK, images)
	}
}

// UploadSliderImage appends one uploaded image to the slider.
func UploadSliderImage(s *store.Store, uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No image uploaded"})
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
			zap.L().Error("slider: image save failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save image"})
			return
		}

		if err := s.AppendSliderImage(imagePath); err != nil {
			zap.L().Error("slider: append failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update slider"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// RemoveSliderImage deletes the image at the given position. Out-of-range or
// malformed positions are ignored and still report success.
func RemoveSliderImage(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}
		if err := s.RemoveSliderImage(index); err != nil {
			zap.L().Error("slider: remove failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update slider"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
