package repo

import (
	"errors"

	"github.com/Kostiantyn78/ImageHub/internal/model"

	"gorm.io/gorm"
)

type CommentStore interface {
	Create(comment *model.Comment) error
	ListByPhotoID(photoID uint, offset, limit int) ([]model.Comment, error)
	// UpdateOwned rewrites the text of the comment matching both id and
	// owner in one predicate. Returns (nil, nil) when no row matches.
	UpdateOwned(commentID, userID uint, text string) (*model.Comment, error)
	// Delete removes the comment unconditionally and reports whether a
	// row existed.
	Delete(commentID uint) (bool, error)
}

// PhotoStore is the existence check the comment module needs.
type PhotoStore interface {
	FindByID(id uint) (*model.Photo, error)
}

func NewCommentRepository(db *gorm.DB) CommentStore {
	return &CommentRepository{db: db}
}

type CommentRepository struct {
	db *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) ListByPhotoID(photoID uint, offset, limit int) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Where("photo_id = ?", photoID).
		Order("id asc").Offset(offset).Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) UpdateOwned(commentID, userID uint, text string) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Where("id = ? AND user_id = ?", commentID, userID).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	comment.Text = text
	if err := r.db.Save(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(commentID uint) (bool, error) {
	result := r.db.Delete(&model.Comment{}, commentID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
