package repo

import (
	"errors"

	"github.com/Kostiantyn78/ImageHub/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

// Lookups return (nil, nil) when no row matches so services can
// distinguish "absent" from a database failure.

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) UpdateRefreshToken(userID uint, token string) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).
		Update("refresh_token", token).Error
}

func (r *UserRepository) UpdateConfirmed(userID uint, confirmed bool) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).
		Update("confirmed", confirmed).Error
}

func (r *UserRepository) UpdateAvatar(userID uint, url string) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).
		Update("avatar", url).Error
}

func (r *UserRepository) UpdateCountPhoto(userID uint, count int) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).
		Update("count_photo", count).Error
}
