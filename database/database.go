package database

import (
	"github.com/rmonte/devfolio-backend/models"
	"github.com/rmonte/devfolio-backend/validate"
	"gorm.io/gorm"
)

type Database struct {
	db                    *gorm.DB
	developerRepo         *DeveloperRepo
	developerInfoRepo     *DeveloperInfoRepo
	projectRepo           *ProjectRepo
	technologyRepo        *TechnologyRepo
	projectTechnologyRepo *ProjectTechnologyRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                    db,
		developerRepo:         NewDeveloperRepo(db),
		developerInfoRepo:     NewDeveloperInfoRepo(db),
		projectRepo:           NewProjectRepo(db),
		technologyRepo:        NewTechnologyRepo(db),
		projectTechnologyRepo: NewProjectTechnologyRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) DeveloperRepo() *DeveloperRepo {
	return d.developerRepo
}

func (d Database) DeveloperInfoRepo() *DeveloperInfoRepo {
	return d.developerInfoRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TechnologyRepo() *TechnologyRepo {
	return d.technologyRepo
}

func (d Database) ProjectTechnologyRepo() *ProjectTechnologyRepo {
	return d.projectTechnologyRepo
}

// Transaction runs fn inside a single database transaction. The Database
// handed to fn is rebound to the transaction, so every repository call made
// through it commits or rolls back as one unit.
func (d Database) Transaction(fn func(tx Database) error) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Migrate creates or updates the schema and seeds the technology reference
// table. Safe to run repeatedly.
func (d Database) Migrate() error {
	err := d.db.AutoMigrate(
		&models.DeveloperInfo{},
		&models.Developer{},
		&models.Project{},
		&models.Technology{},
		&models.ProjectTechnology{},
	)
	if err != nil {
		return err
	}
	return d.technologyRepo.Seed(validate.TechNames)
}
