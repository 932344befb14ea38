package database

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/BicaMarius/digital-portofolio-sub001/models"
)

// resourceOrder keeps route mounting and listings deterministic.
var resourceOrder = []string{
	"projects",
	"writings",
	"albums",
	"tags",
	"gallery-items",
	"photo-locations",
	"photo-devices",
	"films",
	"notes",
}

// newRegistry is the single source of truth mapping URL path segments to
// resource descriptors. Adding a resource kind is one entry here plus its
// model; no handler code changes.
func newRegistry(db *gorm.DB, valid *validator.Validate) map[string]Resource {
	return map[string]Resource{
		"projects": newResource[models.Project](db, valid, "projects", "Project",
			Capabilities{HasUpdatedAt: true, SoftDeletes: true}),
		"writings": newResource[models.Writing](db, valid, "writings", "Writing",
			Capabilities{HasUpdatedAt: true, SoftDeletes: true}),
		"albums": newResource[models.Album](db, valid, "albums", "Album",
			Capabilities{HasUpdatedAt: true}),
		"tags": newResource[models.Tag](db, valid, "tags", "Tag",
			Capabilities{}),
		"gallery-items": newResource[models.GalleryItem](db, valid, "gallery-items", "Gallery item",
			Capabilities{}),
		"photo-locations": newResource[models.PhotoLocation](db, valid, "photo-locations", "Photo location",
			Capabilities{}),
		"photo-devices": newResource[models.PhotoDevice](db, valid, "photo-devices", "Photo device",
			Capabilities{}),
		"films": newResource[models.Film](db, valid, "films", "Film",
			Capabilities{SoftDeletes: true}),
		"notes": newResource[models.Note](db, valid, "notes", "Note",
			Capabilities{HasUpdatedAt: true, SoftDeletes: true}),
	}
}
