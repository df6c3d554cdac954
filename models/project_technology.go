package models

import "time"

// ProjectTechnology links a technology to a project. Every project owns at
// least one row: a placeholder with a nil TechnologyID is inserted at project
// creation and reused in place when the first real technology is added.
// The (project_id, technology_id) pair is unique; rows with a nil
// TechnologyID are exempt since SQL NULLs compare distinct.
type ProjectTechnology struct {
	ID           int         `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	AddedIn      time.Time   `json:"addedIn" db:"added_in" gorm:"not null"`
	ProjectID    int         `json:"projectId" db:"project_id" gorm:"not null;index;uniqueIndex:idx_project_technology_unique"`
	TechnologyID *int        `json:"technologyId" db:"technology_id" gorm:"uniqueIndex:idx_project_technology_unique"`
	Technology   *Technology `json:"-" gorm:"foreignKey:TechnologyID;references:ID"`
}
