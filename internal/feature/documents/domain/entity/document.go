// Package entity defines the domain entities for the documents feature.
package entity

import "time"

// Document represents a downloadable file published on the site, referenced
// by URL rather than stored inline.
type Document struct {
	ID          string `gorm:"primaryKey;size:36"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	FileURL     string `gorm:"size:512;not null"`

	// FileType is the display hint for the frontend, e.g. "pdf" or "doc".
	FileType string `gorm:"size:16;not null"`

	// Category groups documents, e.g. "statutes", "bylaws", "other".
	Category string `gorm:"size:64;not null;index"`

	CreatedAt time.Time `gorm:"index"`
}
