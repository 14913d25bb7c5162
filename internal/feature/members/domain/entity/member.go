// Package entity defines the domain entities for the members feature.
package entity

import "time"

// Member types.
const (
	TypeFounder  = "founder"
	TypeActive   = "active"
	TypeHonorary = "honorary"
)

// Member represents an association member or a pending membership
// application. Applications start unapproved with TypeActive.
type Member struct {
	ID    string `gorm:"primaryKey;size:36"`
	Name  string `gorm:"size:255;not null"`
	Email string `gorm:"size:255;not null"`
	Phone string `gorm:"size:64;not null"`

	// MemberType is one of TypeFounder, TypeActive or TypeHonorary.
	MemberType string `gorm:"size:32;not null;index"`

	// Bio is filled by admins for approved members.
	Bio string `gorm:"type:text"`

	// Motivation is the free text from the public application form.
	Motivation string `gorm:"type:text"`

	// Approved marks whether the application was accepted.
	Approved bool `gorm:"not null;index"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
