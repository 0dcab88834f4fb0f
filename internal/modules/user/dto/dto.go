package dto

import (
	"time"

	"github.com/Kostiantyn78/ImageHub/internal/model"
)

type ProfileResponse struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Avatar     string    `json:"avatar"`
	CountPhoto int       `json:"count_photo"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewProfileResponse(user *model.User) ProfileResponse {
	return ProfileResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Avatar:     user.Avatar,
		CountPhoto: user.CountPhoto,
		CreatedAt:  user.CreatedAt,
	}
}
