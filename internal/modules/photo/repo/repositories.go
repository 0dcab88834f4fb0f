package repo

import (
	"github.com/Kostiantyn78/ImageHub/internal/model"

	"gorm.io/gorm"
)

type PhotoStore interface {
	CreateWithTags(photo *model.Photo, tags []model.Tag) error
	FindByID(id uint) (*model.Photo, error)
	UpdateDescription(photoID uint, description string) error
	Delete(photo *model.Photo) error
	CountByUserID(userID uint) (int64, error)
}

type TagStore interface {
	GetOrCreate(name string) (*model.Tag, error)
}

func NewPhotoRepository(db *gorm.DB) PhotoStore {
	return &PhotoRepository{db: db}
}

func NewTagRepository(db *gorm.DB) TagStore {
	return &TagRepository{db: db}
}
