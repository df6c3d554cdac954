package database

import (
	"errors"

	"github.com/rmonte/devfolio-backend/models"
	"gorm.io/gorm"
)

type DeveloperRepo struct {
	db *gorm.DB
}

func NewDeveloperRepo(db *gorm.DB) *DeveloperRepo {
	return &DeveloperRepo{db}
}

const developerViewSelect = `
	d.id AS developer_id,
	d.name AS developer_name,
	d.email AS developer_email,
	di.id AS developer_info_id,
	di.developer_since AS developer_info_developer_since,
	di.preferred_os AS developer_info_preferred_os`

// FindByID returns a developer by id, or nil if no row matches.
func (r *DeveloperRepo) FindByID(id int) (*models.Developer, error) {
	var developer models.Developer
	err := r.db.First(&developer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &developer, nil
}

// FindByEmail returns a developer by email, or nil if no row matches.
func (r *DeveloperRepo) FindByEmail(email string) (*models.Developer, error) {
	var developer models.Developer
	err := r.db.Where("email = ?", email).First(&developer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &developer, nil
}

// FindAllViews returns every developer left-joined with its info record.
func (r *DeveloperRepo) FindAllViews() ([]models.DeveloperView, error) {
	views := []models.DeveloperView{}
	err := r.db.Table("developers d").
		Select(developerViewSelect).
		Joins("LEFT JOIN developer_infos di ON d.developer_info_id = di.id").
		Order("d.id").
		Scan(&views).Error
	return views, err
}

// FindViewByID returns the joined view row for one developer.
func (r *DeveloperRepo) FindViewByID(id int) (*models.DeveloperView, error) {
	var view models.DeveloperView
	err := r.db.Table("developers d").
		Select(developerViewSelect).
		Joins("LEFT JOIN developer_infos di ON d.developer_info_id = di.id").
		Where("d.id = ?", id).
		Scan(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Add inserts a new developer into the database
func (r *DeveloperRepo) Add(developer *models.Developer) error {
	return r.db.Create(developer).Error
}

// UpdateFields applies a column subset update and returns the updated row.
func (r *DeveloperRepo) UpdateFields(id int, fields map[string]any) (*models.Developer, error) {
	if err := r.db.Model(&models.Developer{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	var developer models.Developer
	if err := r.db.First(&developer, id).Error; err != nil {
		return nil, err
	}
	return &developer, nil
}

// Delete removes a developer from the database by id
func (r *DeveloperRepo) Delete(id int) error {
	return r.db.Delete(&models.Developer{}, id).Error
}
