package dto

import (
	"time"

	"github.com/Kostiantyn78/ImageHub/internal/model"
)

type UpdateDescriptionRequest struct {
	Description string `json:"description" binding:"required,max=255"`
}

type PhotoResponse struct {
	ID          uint      `json:"id"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	UserID      uint      `json:"user_id"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewPhotoResponse(photo *model.Photo) PhotoResponse {
	tags := make([]string, 0, len(photo.Tags))
	for _, tag := range photo.Tags {
		tags = append(tags, tag.Name)
	}
	return PhotoResponse{
		ID:          photo.ID,
		URL:         photo.URL,
		Description: photo.Description,
		UserID:      photo.UserID,
		Tags:        tags,
		CreatedAt:   photo.CreatedAt,
		UpdatedAt:   photo.UpdatedAt,
	}
}
