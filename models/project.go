package models

import "time"

// Project represents a project owned by exactly one developer
type Project struct {
	ID            int                 `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name          string              `json:"name" db:"name" gorm:"type:text;not null"`
	Description   string              `json:"description" db:"description" gorm:"type:text;not null"`
	EstimatedTime string              `json:"estimatedTime" db:"estimated_time" gorm:"type:text;not null"`
	Repository    string              `json:"repository" db:"repository" gorm:"type:text;not null"`
	StartDate     time.Time           `json:"startDate" db:"start_date" gorm:"not null"`
	EndDate       *time.Time          `json:"endDate" db:"end_date"`
	DeveloperID   int                 `json:"developerId" db:"developer_id" gorm:"not null;index"`
	Developer     *Developer          `json:"-" gorm:"foreignKey:DeveloperID;references:ID"`
	Technologies  []ProjectTechnology `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}
