package photo

import (
	"github.com/Kostiantyn78/ImageHub/internal/modules/photo/handler"
	"github.com/Kostiantyn78/ImageHub/internal/modules/photo/repo"
	"github.com/Kostiantyn78/ImageHub/internal/modules/photo/service"
	"github.com/Kostiantyn78/ImageHub/internal/platform/cloud"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(photoStore repo.PhotoStore, tagStore repo.TagStore, gateway cloud.Gateway) *Module {
	moduleService := service.New(photoStore, tagStore, gateway)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
