package auth

import (
	"github.com/Kostiantyn78/ImageHub/internal/mail"
	"github.com/Kostiantyn78/ImageHub/internal/modules/auth/handler"
	"github.com/Kostiantyn78/ImageHub/internal/modules/auth/repo"
	"github.com/Kostiantyn78/ImageHub/internal/modules/auth/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(userStore repo.UserStore, mailer mail.Sender) *Module {
	moduleService := service.New(userStore, mailer)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
