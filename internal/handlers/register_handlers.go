package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/shivamgupta-zluri/onboarding-project/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// All API routes live under /api, matching the paths the web client uses
	api := r.Group("/api")

	registerTransactionRoutes(api, services.Transaction, services.Importer)
	registerRateRoutes(api, services.Rates)
}
