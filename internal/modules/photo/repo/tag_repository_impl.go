package repo

import (
	"errors"

	"github.com/Kostiantyn78/ImageHub/internal/model"

	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

// GetOrCreate returns the tag row for an exact name, creating it on first
// use. Concurrent first uses race on the unique constraint; the loser
// re-reads the winner's row.
func (r *TagRepository) GetOrCreate(name string) (*model.Tag, error) {
	var tag model.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag = model.Tag{Name: name}
	if createErr := r.db.Create(&tag).Error; createErr != nil {
		if readErr := r.db.Where("name = ?", name).First(&tag).Error; readErr == nil {
			return &tag, nil
		}
		return nil, createErr
	}
	return &tag, nil
}
