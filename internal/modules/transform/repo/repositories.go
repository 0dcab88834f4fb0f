package repo

import (
	"errors"

	"github.com/Kostiantyn78/ImageHub/internal/model"

	"gorm.io/gorm"
)

type TransformStore interface {
	Create(transform *model.Transform) error
	FindByID(id uint) (*model.Transform, error)
	ListByUserID(userID uint) ([]model.Transform, error)
	Save(transform *model.Transform) error
	Delete(transform *model.Transform) error
}

// PhotoStore is the photo lookup the transform module needs.
type PhotoStore interface {
	FindByID(id uint) (*model.Photo, error)
}

func NewTransformRepository(db *gorm.DB) TransformStore {
	return &TransformRepository{db: db}
}

type TransformRepository struct {
	db *gorm.DB
}

func (r *TransformRepository) Create(transform *model.Transform) error {
	return r.db.Create(transform).Error
}

func (r *TransformRepository) FindByID(id uint) (*model.Transform, error) {
	var transform model.Transform
	if err := r.db.First(&transform, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transform, nil
}

func (r *TransformRepository) ListByUserID(userID uint) ([]model.Transform, error) {
	var transforms []model.Transform
	if err := r.db.Where("user_id = ?", userID).Order("id desc").Find(&transforms).Error; err != nil {
		return nil, err
	}
	return transforms, nil
}

func (r *TransformRepository) Save(transform *model.Transform) error {
	return r.db.Save(transform).Error
}

func (r *TransformRepository) Delete(transform *model.Transform) error {
	return r.db.Delete(transform).Error
}
