package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/azozal-iraqi/Skystore/config"
	ordercontroller "github.com/azozal-iraqi/Skystore/controllers/order"
	productcontroller "github.com/azozal-iraqi/Skystore/controllers/product"
	slidercontroller "github.com/azozal-iraqi/Skystore/controllers/slider"
	"github.com/azozal-iraqi/Skystore/store"
)

// SetupAdminRoutes registers the "/api/admin/*" endpoints. The admin surface
// carries no authentication; it is expected to sit behind a trusted proxy.
func SetupAdminRoutes(r *gin.Engine, s *store.Store, cfg *config.Config) {
	admin := r.Group("/api/admin")
	{
		admin.GET("/orders", ordercontroller.GetAllOrders(s))

		admin.POST("/products", productcontroller.CreateProduct(s, cfg.UploadsDir))
		admin.DELETE("/products/:id", productcontroller.DeleteProduct(s))

		admin.POST("/slider", slidercontroller.UploadSliderImage(s, cfg.UploadsDir))
		admin.DELETE("/slider/:index", slidercontroller.RemoveSliderImage(s))
	}
}
