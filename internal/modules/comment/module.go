package comment

import (
	"github.com/Kostiantyn78/ImageHub/internal/modules/comment/handler"
	"github.com/Kostiantyn78/ImageHub/internal/modules/comment/repo"
	"github.com/Kostiantyn78/ImageHub/internal/modules/comment/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(commentStore repo.CommentStore, photoStore repo.PhotoStore) *Module {
	moduleService := service.New(commentStore, photoStore)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
