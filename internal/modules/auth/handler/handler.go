package handler

import "github.com/Kostiantyn78/ImageHub/internal/modules/auth/service"

type Handler struct {
	authService *service.Service
}

func New(authService *service.Service) *Handler {
	return &Handler{authService: authService}
}
