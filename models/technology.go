package models

// Technology is a pre-seeded reference row; the API never creates these.
type Technology struct {
	ID   int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;unique"`
}
