package router

import (
	"github.com/Kostiantyn78/ImageHub/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerPhotoRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc, m *modules.AppModules) {
	h := m.Photo.Handler

	imageGroup := api.Group("/images")
	imageGroup.Use(authRequired)

	imageGroup.POST("", h.Upload)
	imageGroup.GET("/:id", h.Get)
	imageGroup.PATCH("/:id", h.UpdateDescription)
	imageGroup.DELETE("/:id", h.Delete)
}
