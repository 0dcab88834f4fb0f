package router

import (
	"github.com/Kostiantyn78/ImageHub/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc, m *modules.AppModules) {
	h := m.User.Handler

	userGroup := api.Group("/users")
	userGroup.Use(authRequired)

	userGroup.GET("/me", h.Me)
	userGroup.PATCH("/avatar", h.UpdateAvatar)
	userGroup.GET("/:username", h.Profile)
}
