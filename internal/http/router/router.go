package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adlot.app/inventory/internal/http/handler"
	"adlot.app/inventory/internal/http/middleware"
	"adlot.app/inventory/internal/service"
)

type RouterConfig struct {
	// AuthRequired rejects unauthenticated requests; when false every
	// caller sees all rows.
	AuthRequired bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.Auth(services.TokenVerifier(), cfg.AuthRequired)

	orgHandler := handler.NewOrganizationHandler(services.Organizations())
	OrganizationRouter(router.Group("/organizations", auth), orgHandler)

	listingHandler := handler.NewListingHandler(services.Listings())
	InventoryRouter(router.Group("/inventory", auth), listingHandler)
}
