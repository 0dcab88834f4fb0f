package transform

import (
	"github.com/Kostiantyn78/ImageHub/internal/modules/transform/handler"
	"github.com/Kostiantyn78/ImageHub/internal/modules/transform/repo"
	"github.com/Kostiantyn78/ImageHub/internal/modules/transform/service"
	"github.com/Kostiantyn78/ImageHub/internal/platform/cloud"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(transformStore repo.TransformStore, photoStore repo.PhotoStore, access service.AccessChecker, gateway cloud.Gateway) *Module {
	moduleService := service.New(transformStore, photoStore, access, gateway)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
