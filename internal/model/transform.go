package model

import "time"

// Transform links a transformed cloud asset and its QR code asset to the
// source photo. The owner id is denormalized at creation time; the row is
// deliberately not cascaded when the source photo is deleted.
type Transform struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	PhotoID       uint      `json:"photo_id" gorm:"not null;index"`
	URL           string    `json:"url" gorm:"size:255;not null"`
	CloudID       string    `json:"-" gorm:"size:255;not null"`
	QRCodeURL     string    `json:"qr_code_url" gorm:"size:255"`
	QRCodeCloudID string    `json:"-" gorm:"size:255"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
}
