package database

import (
	"errors"

	"github.com/rmonte/devfolio-backend/models"
	"gorm.io/gorm"
)

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

// FindByName returns a technology by its exact (normalized) name, or nil if
// no row matches.
func (r *TechnologyRepo) FindByName(name string) (*models.Technology, error) {
	var technology models.Technology
	err := r.db.Where("name = ?", name).First(&technology).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &technology, nil
}

// Seed inserts the reference technology names, skipping ones already present.
func (r *TechnologyRepo) Seed(names []string) error {
	for _, name := range names {
		technology := models.Technology{Name: name}
		if err := r.db.Where("name = ?", name).FirstOrCreate(&technology).Error; err != nil {
			return err
		}
	}
	return nil
}
