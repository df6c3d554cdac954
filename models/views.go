package models

import "time"

// Flattened joined-row shapes returned by the list/get endpoints. Field names
// follow gorm's naming strategy so the repository joins can Scan straight
// into them; JSON names match the column aliases clients already consume.

// DeveloperView is a developer left-joined with its optional info record.
type DeveloperView struct {
	DeveloperID                 int        `json:"developerId"`
	DeveloperName               string     `json:"developerName"`
	DeveloperEmail              string     `json:"developerEmail"`
	DeveloperInfoID             *int       `json:"developerInfoId"`
	DeveloperInfoDeveloperSince *time.Time `json:"developerInfoDeveloperSince"`
	DeveloperInfoPreferredOS    *string    `json:"developerInfoPreferredOS"`
}

// ProjectView is one project/technology association row. The placeholder
// association yields a row with nil technology fields.
type ProjectView struct {
	ProjectID            int        `json:"projectId"`
	ProjectName          string     `json:"projectName"`
	ProjectDescription   string     `json:"projectDescription"`
	ProjectEstimatedTime string     `json:"projectEstimatedTime"`
	ProjectRepository    string     `json:"projectRepository"`
	ProjectStartDate     time.Time  `json:"projectStartDate"`
	ProjectEndDate       *time.Time `json:"projectEndDate"`
	ProjectDeveloperID   int        `json:"projectDeveloperId"`
	TechnologyID         *int       `json:"technologyId"`
	TechnologyName       *string    `json:"technologyName"`
}

// DeveloperProjectView is one row of the developer ⋈ info ⋈ project ⋈
// association ⋈ technology join used by GET /developers/{id}/projects.
type DeveloperProjectView struct {
	DeveloperID                 int        `json:"developerId"`
	DeveloperName               string     `json:"developerName"`
	DeveloperEmail              string     `json:"developerEmail"`
	DeveloperInfoID             *int       `json:"developerInfoId"`
	DeveloperInfoDeveloperSince *time.Time `json:"developerInfoDeveloperSince"`
	DeveloperInfoPreferredOS    *string    `json:"developerInfoPreferredOS"`
	ProjectID                   int        `json:"projectId"`
	ProjectName                 string     `json:"projectName"`
	ProjectDescription          string     `json:"projectDescription"`
	ProjectEstimatedTime        string     `json:"projectEstimatedTime"`
	ProjectRepository           string     `json:"projectRepository"`
	ProjectStartDate            time.Time  `json:"projectStartDate"`
	ProjectEndDate              *time.Time `json:"projectEndDate"`
	TechnologyID                *int       `json:"technologyId"`
	TechnologyName              *string    `json:"technologyName"`
}
