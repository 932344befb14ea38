package database

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/BicaMarius/digital-portofolio-sub001/models"
)

type Database struct {
	db        *gorm.DB
	resources map[string]Resource
	cvRepo    *CVRepo
}

// New initializes a new Database struct with the resource registry and the
// CV repository sharing a single GORM database instance.
func New(db *gorm.DB) Database {
	valid := validator.New(validator.WithRequiredStructEnabled())
	return Database{
		db:        db,
		resources: newRegistry(db, valid),
		cvRepo:    NewCVRepo(db),
	}
}

// Resource resolves a URL path segment to its registered descriptor.
func (d Database) Resource(name string) (Resource, bool) {
	res, ok := d.resources[name]
	return res, ok
}

// Resources returns every registered resource in a stable order.
func (d Database) Resources() []Resource {
	out := make([]Resource, 0, len(d.resources))
	for _, name := range resourceOrder {
		if res, ok := d.resources[name]; ok {
			out = append(out, res)
		}
	}
	return out
}

func (d Database) CVRepo() *CVRepo {
	return d.cvRepo
}

// AutoMigrate creates or updates the table for every resource kind plus
// the CV metadata table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Writing{},
		&models.Album{},
		&models.Tag{},
		&models.GalleryItem{},
		&models.PhotoLocation{},
		&models.PhotoDevice{},
		&models.Film{},
		&models.Note{},
		&models.CV{},
	)
}
