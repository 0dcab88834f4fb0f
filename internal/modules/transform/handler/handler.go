package handler

import "github.com/Kostiantyn78/ImageHub/internal/modules/transform/service"

type Handler struct {
	transformService *service.Service
}

func New(transformService *service.Service) *Handler {
	return &Handler{transformService: transformService}
}
