package model

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `json:"username" gorm:"size:150;not null"`
	Email        string    `json:"email" gorm:"size:150;unique;not null;index"`
	Password     string    `json:"-" gorm:"size:255;not null"`
	Avatar       string    `json:"avatar" gorm:"size:255"`
	RefreshToken string    `json:"-" gorm:"size:512"`
	Confirmed    bool      `json:"confirmed" gorm:"default:false"`
	Role         Role      `json:"role" gorm:"size:20;default:user"`
	CountPhoto   int       `json:"count_photo"`
	Photos       []Photo   `json:"-"`
}
