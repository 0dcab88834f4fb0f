package user

import (
	"github.com/Kostiantyn78/ImageHub/internal/modules/user/handler"
	"github.com/Kostiantyn78/ImageHub/internal/modules/user/repo"
	"github.com/Kostiantyn78/ImageHub/internal/modules/user/service"
	"github.com/Kostiantyn78/ImageHub/internal/platform/cloud"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(userStore repo.UserStore, photoCounter service.PhotoCounter, gateway cloud.Gateway) *Module {
	moduleService := service.New(userStore, photoCounter, gateway)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
