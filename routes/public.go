package routes

import (
	"github.com/gin-gonic/gin"

	ordercontroller "github.com/azozal-iraqi/Skystore/controllers/order"
	productcontroller "github.com/azozal-iraqi/Skystore/controllers/product"
	slidercontroller "github.com/azozal-iraqi/Skystore/controllers/slider"
	"github.com/azozal-iraqi/Skystore/notify"
	"github.com/azozal-iraqi/Skystore/store"
)

// SetupPublicRoutes registers the storefront endpoints.
func SetupPublicRoutes(r *gin.Engine, s *store.Store, q *notify.Queue) {
	api := r.Group("/api")
	{
		api.GET("/products", productcontroller.GetProducts(s))
		api.GET("/slider", slidercontroller.GetSlider(s))
		api.POST("/order", ordercontroller.SubmitOrder(s, q))
	}
}
