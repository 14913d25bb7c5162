// Package entity defines the domain entities for the articles feature.
package entity

import "time"

// Article represents a news post on the public site.
type Article struct {
	ID      string `gorm:"primaryKey;size:36"`
	Title   string `gorm:"size:255;not null"`
	Content string `gorm:"type:text;not null"`

	// Excerpt is the short summary shown on listing pages.
	Excerpt  string `gorm:"type:text;not null"`
	Category string `gorm:"size:64;not null;index"`
	ImageURL string `gorm:"size:512"`

	// Published controls public visibility. Admins see drafts too.
	Published bool `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
