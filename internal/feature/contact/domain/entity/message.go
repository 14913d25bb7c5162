// Package entity defines the domain entities for the contact feature.
package entity

import "time"

// Message represents a contact form submission from a site visitor.
type Message struct {
	ID      string `gorm:"primaryKey;size:36"`
	Name    string `gorm:"size:255;not null"`
	Email   string `gorm:"size:255;not null"`
	Subject string `gorm:"size:255;not null"`
	Body    string `gorm:"type:text;not null"`

	// Read marks whether an admin has seen the message.
	Read bool `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"index"`
}
