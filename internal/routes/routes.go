package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ommivivekanandsai/EduFolio/internal/handlers"
)

// RegisterRoutes registers every HTTP route.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.PortfolioHandler.RegisterRoutes(api)
	}

	// Local-storage file serving sits at the root, outside the API group
	appHandlers.FileHandler.RegisterRoutes(ginRouter)
}
