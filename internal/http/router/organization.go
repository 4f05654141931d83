package router

import (
	"github.com/gin-gonic/gin"

	"adlot.app/inventory/internal/http/handler"
)

func OrganizationRouter(rg *gin.RouterGroup, h *handler.OrganizationHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
}
