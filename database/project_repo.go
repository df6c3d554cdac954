package database

import (
	"errors"

	"github.com/rmonte/devfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// The project views are rooted at the association table so every project
// yields one row per technology link, placeholder included.
const projectViewSelect = `
	p.id AS project_id,
	p.name AS project_name,
	p.description AS project_description,
	p.estimated_time AS project_estimated_time,
	p.repository AS project_repository,
	p.start_date AS project_start_date,
	p.end_date AS project_end_date,
	p.developer_id AS project_developer_id,
	t.id AS technology_id,
	t.name AS technology_name`

func (r *ProjectRepo) projectViewQuery() *gorm.DB {
	return r.db.Table("project_technologies pt").
		Select(projectViewSelect).
		Joins("LEFT JOIN projects p ON pt.project_id = p.id").
		Joins("LEFT JOIN technologies t ON pt.technology_id = t.id")
}

// FindByID returns a project by id, or nil if no row matches.
func (r *ProjectRepo) FindByID(id int) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindAllViews returns one joined row per project/technology association.
func (r *ProjectRepo) FindAllViews() ([]models.ProjectView, error) {
	views := []models.ProjectView{}
	err := r.projectViewQuery().Order("p.id, pt.id").Scan(&views).Error
	return views, err
}

// FindViewsByProjectID returns the joined rows for one project.
func (r *ProjectRepo) FindViewsByProjectID(id int) ([]models.ProjectView, error) {
	views := []models.ProjectView{}
	err := r.projectViewQuery().Where("p.id = ?", id).Order("pt.id").Scan(&views).Error
	return views, err
}

// FindViewByTechnology returns the joined row for one specific
// project/technology link.
func (r *ProjectRepo) FindViewByTechnology(projectID, technologyID int) (*models.ProjectView, error) {
	var view models.ProjectView
	err := r.projectViewQuery().
		Where("p.id = ? AND t.id = ?", projectID, technologyID).
		Scan(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// FindViewsByDeveloperID returns the developer ⋈ info ⋈ project ⋈
// association ⋈ technology rows for every project owned by the developer.
func (r *ProjectRepo) FindViewsByDeveloperID(developerID int) ([]models.DeveloperProjectView, error) {
	views := []models.DeveloperProjectView{}
	err := r.db.Table("projects p").
		Select(`
			d.id AS developer_id,
			d.name AS developer_name,
			d.email AS developer_email,
			di.id AS developer_info_id,
			di.developer_since AS developer_info_developer_since,
			di.preferred_os AS developer_info_preferred_os,
			p.id AS project_id,
			p.name AS project_name,
			p.description AS project_description,
			p.estimated_time AS project_estimated_time,
			p.repository AS project_repository,
			p.start_date AS project_start_date,
			p.end_date AS project_end_date,
			t.id AS technology_id,
			t.name AS technology_name`).
		Joins("LEFT JOIN developers d ON p.developer_id = d.id").
		Joins("LEFT JOIN developer_infos di ON d.developer_info_id = di.id").
		Joins("LEFT JOIN project_technologies pt ON p.id = pt.project_id").
		Joins("LEFT JOIN technologies t ON pt.technology_id = t.id").
		Where("d.id = ?", developerID).
		Order("p.id, pt.id").
		Scan(&views).Error
	return views, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// UpdateFields applies a column subset update and returns the updated row.
func (r *ProjectRepo) UpdateFields(id int, fields map[string]any) (*models.Project, error) {
	if err := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id int) error {
	return r.db.Delete(&models.Project{}, id).Error
}
