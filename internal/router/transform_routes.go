package router

import (
	"github.com/Kostiantyn78/ImageHub/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerTransformRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc, m *modules.AppModules) {
	h := m.Transform.Handler

	transformGroup := api.Group("/transform")
	transformGroup.Use(authRequired)

	transformGroup.POST("/create_transform/:photo_id", h.Create)
	transformGroup.GET("/user_transforms", h.ListMine)
	transformGroup.GET("/:id", h.Get)
	transformGroup.PATCH("/:id", h.Update)
	transformGroup.DELETE("/:id", h.Delete)
	transformGroup.GET("/:id/qr_code", h.GetQRCode)
}
