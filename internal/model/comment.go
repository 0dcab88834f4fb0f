package model

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Text      string    `json:"text" gorm:"size:250;not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	PhotoID   uint      `json:"photo_id" gorm:"not null;index"`
}
