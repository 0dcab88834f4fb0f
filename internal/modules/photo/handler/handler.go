package handler

import "github.com/Kostiantyn78/ImageHub/internal/modules/photo/service"

type Handler struct {
	photoService *service.Service
}

func New(photoService *service.Service) *Handler {
	return &Handler{photoService: photoService}
}
