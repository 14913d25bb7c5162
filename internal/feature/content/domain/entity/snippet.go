// Package entity defines the domain entities for the content feature.
package entity

// Snippet is a keyed text fragment edited by admins and rendered by the
// public site (mission statement, contact address, etc).
type Snippet struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:text;not null"`
}
