package router

import (
	"github.com/Kostiantyn78/ImageHub/internal/middleware"
	"github.com/Kostiantyn78/ImageHub/internal/model"
	"github.com/Kostiantyn78/ImageHub/internal/modules"

	"github.com/gin-gonic/gin"
)

func registerCommentRoutes(api *gin.RouterGroup, authRequired gin.HandlerFunc, m *modules.AppModules) {
	h := m.Comment.Handler

	commentGroup := api.Group("/comments")
	commentGroup.Use(authRequired)

	commentGroup.POST("/:image_id", h.Create)
	commentGroup.GET("/all/:image_id", h.List)
	commentGroup.PATCH("/:comment_id", h.Update)
	// Deletion is open to the allow-listed roles only; the service itself
	// does not check the caller.
	commentGroup.DELETE("/:comment_id",
		middleware.RequireRoles(model.RoleAdmin, model.RoleModerator), h.Delete)
}
