// Package models contains the persisted entities of the Hackernews clone.
package models

import (
	"time"
)

// Link is a submitted URL with a short description.
// Links are immutable after creation: no update mutation is exposed.
type Link struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Description string    `gorm:"not null" json:"description"`
	URL         string    `gorm:"not null" json:"url"`

	// Комментарии подгружаются по требованию, без eager join
	Comments []Comment `gorm:"foreignKey:LinkID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"comments,omitempty"`
}

// Comment belongs to exactly one Link. The foreign key is enforced by the
// database, so a Comment can never reference a Link that does not exist.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Body      string    `gorm:"not null" json:"body"`
	LinkID    uint      `gorm:"not null;index" json:"link_id"`
}
