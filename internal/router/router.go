package router

import (
	"github.com/Kostiantyn78/ImageHub/internal/config"
	"github.com/Kostiantyn78/ImageHub/internal/middleware"
	"github.com/Kostiantyn78/ImageHub/internal/modules"

	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
}

func NewRouter(appModules *modules.AppModules) *Router {
	return &Router{modules: appModules}
}

func (rt *Router) Init(r *gin.Engine) {
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")

	// One limiter instance shared by every auth route.
	cfg := config.Get()
	authLimiter := middleware.RateLimit(cfg.RateLimit.AuthRPS, cfg.RateLimit.AuthBurst)
	authRequired := middleware.JWTAuth(rt.modules.Auth.Service)

	registerAuthRoutes(api, authLimiter, rt.modules)
	registerUserRoutes(api, authRequired, rt.modules)
	registerPhotoRoutes(api, authRequired, rt.modules)
	registerCommentRoutes(api, authRequired, rt.modules)
	registerTransformRoutes(api, authRequired, rt.modules)

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
