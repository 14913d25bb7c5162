// Package entity defines the domain entities for the projects feature.
package entity

import "time"

// Project statuses.
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Project represents one of the organization's programs.
type Project struct {
	ID          string `gorm:"primaryKey;size:36"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	Objectives  string `gorm:"type:text;not null"`

	// Status is either StatusOngoing or StatusCompleted.
	Status string `gorm:"size:32;not null;index"`

	ImageURL string `gorm:"size:512"`

	// Date is the project start date as supplied by the editor, free-form.
	Date string `gorm:"size:32"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
