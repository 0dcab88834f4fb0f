package handler

import "github.com/Kostiantyn78/ImageHub/internal/modules/comment/service"

type Handler struct {
	commentService *service.Service
}

func New(commentService *service.Service) *Handler {
	return &Handler{commentService: commentService}
}
