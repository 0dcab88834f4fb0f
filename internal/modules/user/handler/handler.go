package handler

import "github.com/Kostiantyn78/ImageHub/internal/modules/user/service"

type Handler struct {
	userService *service.Service
}

func New(userService *service.Service) *Handler {
	return &Handler{userService: userService}
}
