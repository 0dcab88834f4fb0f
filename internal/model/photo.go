package model

import "time"

type Photo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	URL         string    `json:"url" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"size:255"`
	CloudID     string    `json:"-" gorm:"size:255;not null"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	User        User      `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Tags        []Tag     `json:"tags" gorm:"many2many:photo_tags;constraint:OnDelete:CASCADE"`
}

type Tag struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name" gorm:"size:50;unique;not null"`
	Photos    []Photo   `json:"-" gorm:"many2many:photo_tags"`
}
