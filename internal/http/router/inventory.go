package router

import (
	"github.com/gin-gonic/gin"

	"adlot.app/inventory/internal/http/handler"
)

func InventoryRouter(rg *gin.RouterGroup, h *handler.ListingHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
