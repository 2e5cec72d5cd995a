package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/azozal-iraqi/Skystore/config"
	"github.com/azozal-iraqi/Skystore/notify"
	"github.com/azozal-iraqi/Skystore/store"
)

// SetupRoutes is the single entry-point that wires up the public storefront
// and admin route groups.
func SetupRoutes(r *gin.Engine, s *store.Store, q *notify.Queue, cfg *config.Config) {
	SetupPublicRoutes(r, s, q)
	SetupAdminRoutes(r, s, cfg)
}
