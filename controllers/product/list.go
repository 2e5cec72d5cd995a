package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/azozal-iraqi/Skystore/models"
	"github.com/azozal-iraqi/Skystore/store"
)

// GetProducts returns the full catalog. A storage read failure degrades to
// an empty list so the storefront keeps rendering.
func GetProducts(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := s.Products()
		if err != nil {
			zap.L().Error("product: list failed", zap.Error(err))
			c.JSON(http.StatusOK, []models.Product{})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
