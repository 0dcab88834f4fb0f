package service

import (
	"github.com/Kostiantyn78/ImageHub/internal/model"
	"github.com/Kostiantyn78/ImageHub/internal/modules/comment/repo"
	platformservice "github.com/Kostiantyn78/ImageHub/internal/platform/service"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type Service struct {
	commentStore repo.CommentStore
	photoStore   repo.PhotoStore
}

func New(commentStore repo.CommentStore, photoStore repo.PhotoStore) *Service {
	return &Service{
		commentStore: commentStore,
		photoStore:   photoStore,
	}
}

// Create attaches a comment to an existing photo. Text length is enforced
// at the request boundary.
func (s *Service) Create(user *model.User, photoID uint, text string) (*model.Comment, error) {
	if err := s.requirePhoto(photoID); err != nil {
		return nil, err
	}
	comment := &model.Comment{
		Text:    text,
		UserID:  user.ID,
		PhotoID: photoID,
	}
	if err := s.commentStore.Create(comment); err != nil {
		return nil, platformservice.NewInternalError("could not save comment")
	}
	return comment, nil
}

// List pages through a photo's comments. Offset is floored at zero and
// the limit clamped into [10, 100].
func (s *Service) List(photoID uint, offset, limit int) ([]model.Comment, error) {
	if err := s.requirePhoto(photoID); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < defaultListLimit {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	comments, err := s.commentStore.ListByPhotoID(photoID, offset, limit)
	if err != nil {
		return nil, platformservice.NewInternalError("could not list comments")
	}
	return comments, nil
}

// Update rewrites a comment's text. Eligibility is the id+owner query
// predicate: a comment owned by someone else is indistinguishable from a
// missing one.
func (s *Service) Update(user *model.User, commentID uint, text string) (*model.Comment, error) {
	comment, err := s.commentStore.UpdateOwned(commentID, user.ID, text)
	if err != nil {
		return nil, platformservice.NewInternalError("could not update comment")
	}
	if comment == nil {
		return nil, platformservice.NewNotFoundError("comment not found or not available")
	}
	return comment, nil
}

// Delete removes a comment for any caller. The role gate lives on the
// route, not here.
func (s *Service) Delete(commentID uint) error {
	deleted, err := s.commentStore.Delete(commentID)
	if err != nil {
		return platformservice.NewInternalError("could not delete comment")
	}
	if !deleted {
		return platformservice.NewNotFoundError("comment not found")
	}
	return nil
}

func (s *Service) requirePhoto(photoID uint) error {
	photo, err := s.photoStore.FindByID(photoID)
	if err != nil {
		return platformservice.NewInternalError("could not load photo")
	}
	if photo == nil {
		return platformservice.NewNotFoundError("photo not found")
	}
	return nil
}
