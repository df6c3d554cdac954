package database

import (
	"time"

	"github.com/rmonte/devfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectTechnologyRepo struct {
	db *gorm.DB
}

func NewProjectTechnologyRepo(db *gorm.DB) *ProjectTechnologyRepo {
	return &ProjectTechnologyRepo{db}
}

// FindByProjectID returns every association row of a project, oldest first.
func (r *ProjectTechnologyRepo) FindByProjectID(projectID int) ([]models.ProjectTechnology, error) {
	links := []models.ProjectTechnology{}
	err := r.db.Where("project_id = ?", projectID).Order("id").Find(&links).Error
	return links, err
}

// Exists reports whether a technology is linked to a project.
func (r *ProjectTechnologyRepo) Exists(projectID, technologyID int) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProjectTechnology{}).
		Where("project_id = ? AND technology_id = ?", projectID, technologyID).
		Count(&count).Error
	return count > 0, err
}

// Add inserts a new association row into the database
func (r *ProjectTechnologyRepo) Add(link *models.ProjectTechnology) error {
	return r.db.Create(link).Error
}

// SetTechnology fills a placeholder row in place with a real technology.
func (r *ProjectTechnologyRepo) SetTechnology(id, technologyID int, addedIn time.Time) error {
	return r.db.Model(&models.ProjectTechnology{}).
		Where("id = ?", id).
		Updates(map[string]any{"technology_id": technologyID, "added_in": addedIn}).Error
}

// DeleteByProjectAndTechnology removes the association row linking a
// technology to a project.
func (r *ProjectTechnologyRepo) DeleteByProjectAndTechnology(projectID, technologyID int) error {
	return r.db.
		Where("project_id = ? AND technology_id = ?", projectID, technologyID).
		Delete(&models.ProjectTechnology{}).Error
}

// DeleteByProjectID removes every association row of a project.
func (r *ProjectTechnologyRepo) DeleteByProjectID(projectID int) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.ProjectTechnology{}).Error
}
