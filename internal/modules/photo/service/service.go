package service

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/Kostiantyn78/ImageHub/internal/model"
	"github.com/Kostiantyn78/ImageHub/internal/modules/photo/repo"
	"github.com/Kostiantyn78/ImageHub/internal/platform/cloud"
	platformservice "github.com/Kostiantyn78/ImageHub/internal/platform/service"
)

const maxTagsPerPhoto = 5

type Service struct {
	photoStore repo.PhotoStore
	tagStore   repo.TagStore
	gateway    cloud.Gateway
}

func New(photoStore repo.PhotoStore, tagStore repo.TagStore, gateway cloud.Gateway) *Service {
	return &Service{
		photoStore: photoStore,
		tagStore:   tagStore,
		gateway:    gateway,
	}
}

// HasAccess is the single authorization predicate for photos and anything
// derived from them: the owner or an admin, nobody else.
func (s *Service) HasAccess(userID, ownerID uint, role model.Role) bool {
	return userID == ownerID || role == model.RoleAdmin
}

// Upload stores the binary on the media host, resolves tags, and persists
// the photo with its associations in one transaction. The tag limit is
// checked before any side effect. If tag resolution fails after the binary
// is already remote, the remote asset is deleted to compensate.
func (s *Service) Upload(ctx context.Context, user *model.User, file io.Reader, description, tagsCSV string) (*model.Photo, error) {
	names, err := splitTags(tagsCSV)
	if err != nil {
		return nil, err
	}

	asset, err := s.gateway.Store(ctx, file, cloud.PhotoFolder(user.ID))
	if err != nil {
		log.Printf("photo upload for user %d: %v", user.ID, err)
		return nil, platformservice.NewUpstreamError("could not store photo")
	}

	tags, err := s.resolveTags(names)
	if err != nil {
		if deleteErr := s.gateway.Delete(ctx, asset.CloudID); deleteErr != nil {
			log.Printf("orphaned remote asset %s: %v", asset.CloudID, deleteErr)
		}
		return nil, platformservice.NewInternalError("could not resolve tags")
	}

	photo := &model.Photo{
		URL:         asset.URL,
		CloudID:     asset.CloudID,
		Description: description,
		UserID:      user.ID,
	}
	if err := s.photoStore.CreateWithTags(photo, tags); err != nil {
		if deleteErr := s.gateway.Delete(ctx, asset.CloudID); deleteErr != nil {
			log.Printf("orphaned remote asset %s: %v", asset.CloudID, deleteErr)
		}
		return nil, platformservice.NewInternalError("could not save photo")
	}
	photo.Tags = tags
	return photo, nil
}

// Get returns the photo if the caller may see it.
func (s *Service) Get(user *model.User, photoID uint) (*model.Photo, error) {
	photo, err := s.photoStore.FindByID(photoID)
	if err != nil {
		return nil, platformservice.NewInternalError("could not load photo")
	}
	if photo == nil {
		return nil, platformservice.NewNotFoundError("photo not found")
	}
	if !s.HasAccess(user.ID, photo.UserID, user.Role) {
		return nil, platformservice.NewForbiddenError("not enough permissions")
	}
	return photo, nil
}

func (s *Service) UpdateDescription(user *model.User, photoID uint, description string) (*model.Photo, error) {
	photo, err := s.Get(user, photoID)
	if err != nil {
		return nil, err
	}
	if err := s.photoStore.UpdateDescription(photo.ID, description); err != nil {
		return nil, platformservice.NewInternalError("could not update photo")
	}
	photo.Description = description
	return photo, nil
}

// Delete removes the remote asset first, then the local row. A remote
// failure keeps the row so the record still points at a live asset.
func (s *Service) Delete(ctx context.Context, user *model.User, photoID uint) error {
	photo, err := s.Get(user, photoID)
	if err != nil {
		return err
	}
	if err := s.gateway.Delete(ctx, photo.CloudID); err != nil {
		log.Printf("delete remote asset %s: %v", photo.CloudID, err)
		return platformservice.NewUpstreamError("could not delete photo")
	}
	if err := s.photoStore.Delete(photo); err != nil {
		return platformservice.NewInternalError("could not delete photo")
	}
	return nil
}

// FindByID exposes the raw lookup for modules deriving from photos.
func (s *Service) FindByID(photoID uint) (*model.Photo, error) {
	return s.photoStore.FindByID(photoID)
}

// CountByUserID reports how many photos a user currently owns.
func (s *Service) CountByUserID(userID uint) (int64, error) {
	return s.photoStore.CountByUserID(userID)
}

func splitTags(tagsCSV string) ([]string, error) {
	if strings.TrimSpace(tagsCSV) == "" {
		return nil, nil
	}
	var names []string
	for _, raw := range strings.Split(tagsCSV, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if len(names) > maxTagsPerPhoto {
		return nil, platformservice.NewValidationError("maximum 5 tags allowed")
	}
	return names, nil
}

func (s *Service) resolveTags(names []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		tag, err := s.tagStore.GetOrCreate(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}
