// Package store is the data access layer over gorm. All translation of
// driver/ORM failure modes into domain errors happens at this boundary;
// callers never compare vendor error codes.
package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrLinkNotFound is returned when a comment references a link that
	// does not exist (surfaced by the database as a foreign key violation)
	ErrLinkNotFound = errors.New("link not found")
)

// Store aggregates the per-entity stores over a single gorm connection
type Store struct {
	Links    *LinkStore
	Comments *CommentStore
}

// New creates a Store over the given gorm connection.
// The connection must be opened with TranslateError enabled so that
// constraint violations arrive as gorm's enumerated errors.
func New(db *gorm.DB) *Store {
	return &Store{
		Links:    &LinkStore{db: db},
		Comments: &CommentStore{db: db},
	}
}

// isForeignKeyViolation reports whether err is a referential integrity
// failure. The gorm sentinel covers drivers with error translation; the
// message check covers sqlite drivers that predate it.
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
