package store

import (
	"context"
	"errors"
	"fmt"

	"main/models"

	"gorm.io/gorm"
)

// CommentStore provides access to the comments collection
type CommentStore struct {
	db *gorm.DB
}

// Create inserts a new comment. If the referenced link does not exist the
// database rejects the insert with a foreign key violation, which is
// returned as ErrLinkNotFound.
func (s *CommentStore) Create(ctx context.Context, comment *models.Comment) error {
	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		if isForeignKeyViolation(err) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// Get returns the comment with the given id, or ErrNotFound
func (s *CommentStore) Get(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch comment %d: %w", id, err)
	}
	return &comment, nil
}

// ByLink returns all comments referencing the given link
func (s *CommentStore) ByLink(ctx context.Context, linkID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("link_id = ?", linkID).
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments for link %d: %w", linkID, err)
	}
	return comments, nil
}
