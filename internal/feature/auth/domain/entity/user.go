// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// RoleAdmin is the only role this system grants. The role check mechanism
// still generalizes to any other value.
const RoleAdmin = "admin"

// User represents a registered account.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the server-minted UUID identifying the user.
	ID string `gorm:"primaryKey;size:36"`

	// Email is the address the user authenticates with.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the display name.
	Name string `gorm:"size:255;not null"`

	// Password is the bcrypt hash of the password.
	// Plaintext passwords are never stored.
	Password string `gorm:"size:255;not null"`

	// Role is the authorization label checked by the admin gate.
	Role string `gorm:"size:32;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
