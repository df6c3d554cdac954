package models

import "time"

// DeveloperInfo holds the optional extended profile of a developer.
// At most one info record is referenced by a given developer.
type DeveloperInfo struct {
	ID             int       `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	DeveloperSince time.Time `json:"developerSince" db:"developer_since" gorm:"not null"`
	PreferredOS    string    `json:"preferredOS" db:"preferred_os" gorm:"type:text;not null"`
}
