package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/azozal-iraqi/Skystore/store"
)

// DeleteProduct removes a product by id. An unknown or malformed id leaves
// the catalog unchanged and still reports success.
func DeleteProduct(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}
		if err := s.DeleteProduct(id); err != nil {
			zap.L().Error("product: delete failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
