package repo

import (
	"errors"

	"github.com/Kostiantyn78/ImageHub/internal/model"

	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

// CreateWithTags inserts the photo row and its tag associations in one
// transaction. The tag rows must already exist.
func (r *PhotoRepository) CreateWithTags(photo *model.Photo, tags []model.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags").Create(photo).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(photo).Association("Tags").Append(&tags); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PhotoRepository) FindByID(id uint) (*model.Photo, error) {
	var photo model.Photo
	if err := r.db.Preload("Tags").First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) UpdateDescription(photoID uint, description string) error {
	return r.db.Model(&model.Photo{}).Where("id = ?", photoID).
		Update("description", description).Error
}

// Delete removes the row and its tag associations. Comments and transforms
// referencing the photo are left in place.
func (r *PhotoRepository) Delete(photo *model.Photo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(photo).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(photo).Error
	})
}

func (r *PhotoRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Photo{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
