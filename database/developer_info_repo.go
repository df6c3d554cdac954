package database

import (
	"github.com/rmonte/devfolio-backend/models"
	"gorm.io/gorm"
)

type DeveloperInfoRepo struct {
	db *gorm.DB
}

func NewDeveloperInfoRepo(db *gorm.DB) *DeveloperInfoRepo {
	return &DeveloperInfoRepo{db}
}

// Add inserts a new developer info record into the database
func (r *DeveloperInfoRepo) Add(info *models.DeveloperInfo) error {
	return r.db.Create(info).Error
}

// UpdateFields applies a column subset update and returns the updated row.
func (r *DeveloperInfoRepo) UpdateFields(id int, fields map[string]any) (*models.DeveloperInfo, error) {
	if err := r.db.Model(&models.DeveloperInfo{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	var info models.DeveloperInfo
	if err := r.db.First(&info, id).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// Delete removes a developer info record from the database by id
func (r *DeveloperInfoRepo) Delete(id int) error {
	return r.db.Delete(&models.DeveloperInfo{}, id).Error
}
