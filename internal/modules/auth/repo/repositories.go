package repo

import "github.com/Kostiantyn78/ImageHub/internal/model"

// UserStore is the directory subset the auth module needs.
type UserStore interface {
	FindByEmail(email string) (*model.User, error)
	Count() (int64, error)
	Create(user *model.User) error
	UpdateRefreshToken(userID uint, token string) error
	UpdateConfirmed(userID uint, confirmed bool) error
}
