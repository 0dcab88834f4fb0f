package service

import (
	"context"
	"io"
	"log"

	"github.com/Kostiantyn78/ImageHub/internal/model"
	"github.com/Kostiantyn78/ImageHub/internal/modules/user/repo"
	"github.com/Kostiantyn78/ImageHub/internal/platform/cloud"
	platformservice "github.com/Kostiantyn78/ImageHub/internal/platform/service"
)

// PhotoCounter reports how many photos a user owns. Implemented by the
// photo module service.
type PhotoCounter interface {
	CountByUserID(userID uint) (int64, error)
}

type Service struct {
	userStore    repo.UserStore
	photoCounter PhotoCounter
	gateway      cloud.Gateway
}

func New(userStore repo.UserStore, photoCounter PhotoCounter, gateway cloud.Gateway) *Service {
	return &Service{
		userStore:    userStore,
		photoCounter: photoCounter,
		gateway:      gateway,
	}
}

// Profile returns the public profile for a username. The denormalized
// photo count is recomputed from the photos table on every view and
// written back when it drifted.
func (s *Service) Profile(username string) (*model.User, error) {
	user, err := s.userStore.FindByUsername(username)
	if err != nil {
		return nil, platformservice.NewInternalError("could not load profile")
	}
	if user == nil {
		return nil, platformservice.NewNotFoundError("user not found")
	}

	count, err := s.photoCounter.CountByUserID(user.ID)
	if err != nil {
		return nil, platformservice.NewInternalError("could not load profile")
	}
	if int(count) != user.CountPhoto {
		user.CountPhoto = int(count)
		if err := s.userStore.UpdateCountPhoto(user.ID, user.CountPhoto); err != nil {
			log.Printf("refresh photo count for user %d: %v", user.ID, err)
		}
	}
	return user, nil
}

// UpdateAvatar stores the image on the media host, derives a 250x250
// fill crop, and records the derived URL on the account.
func (s *Service) UpdateAvatar(ctx context.Context, user *model.User, file io.Reader) (*model.User, error) {
	asset, err := s.gateway.Store(ctx, file, cloud.AvatarFolder)
	if err != nil {
		log.Printf("avatar upload for user %d: %v", user.ID, err)
		return nil, platformservice.NewUpstreamError("could not store avatar")
	}

	url, err := s.gateway.Retransform(ctx, asset.CloudID, cloud.Params{
		"width":  250,
		"height": 250,
		"crop":   "fill",
	})
	if err != nil {
		log.Printf("avatar crop for user %d: %v", user.ID, err)
		return nil, platformservice.NewUpstreamError("could not process avatar")
	}

	if err := s.userStore.UpdateAvatar(user.ID, url); err != nil {
		return nil, platformservice.NewInternalError("could not update avatar")
	}
	user.Avatar = url
	return user, nil
}
