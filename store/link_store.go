package store

import (
	"context"
	"errors"
	"fmt"

	"main/models"

	"gorm.io/gorm"
)

// LinkStore provides access to the links collection
type LinkStore struct {
	db *gorm.DB
}

// Create inserts a new link and fills in its storage-assigned ID
func (s *LinkStore) Create(ctx context.Context, link *models.Link) error {
	if err := s.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

// Get returns the link with the given id, or ErrNotFound
func (s *LinkStore) Get(ctx context.Context, id uint) (*models.Link, error) {
	var link models.Link
	if err := s.db.WithContext(ctx).First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch link %d: %w", id, err)
	}
	return &link, nil
}

// List returns the links matching filter within the requested page,
// in storage order (no explicit ORDER BY is applied).
func (s *LinkStore) List(ctx context.Context, filter LinkFilter, page Page) ([]models.Link, error) {
	var links []models.Link
	err := s.db.WithContext(ctx).
		Scopes(filter.scope(), page.scope()).
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch links: %w", err)
	}
	return links, nil
}
