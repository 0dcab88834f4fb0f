package repo

import (
	"github.com/Kostiantyn78/ImageHub/internal/model"

	"gorm.io/gorm"
)

// UserStore is the full directory surface. Other modules declare the
// narrower subsets they consume; this package provides the one
// implementation backing them all.
type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	Count() (int64, error)
	Create(user *model.User) error
	UpdateRefreshToken(userID uint, token string) error
	UpdateConfirmed(userID uint, confirmed bool) error
	UpdateAvatar(userID uint, url string) error
	UpdateCountPhoto(userID uint, count int) error
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}
