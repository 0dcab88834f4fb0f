package router

import (
	"github.com/Kostiantyn78/ImageHub/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, m *modules.AppModules) {
	h := m.Auth.Handler

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", authLimiter, h.Signup)
	authGroup.POST("/login", authLimiter, h.Login)
	authGroup.GET("/refresh_token", authLimiter, h.Refresh)
	authGroup.GET("/confirmed_email/:token", h.ConfirmEmail)
	authGroup.POST("/request_email", authLimiter, h.RequestEmail)
}
