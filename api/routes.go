package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/BicaMarius/digital-portofolio-sub001/database"
)

// setupRoutes mounts every registered resource through the generic CRUD
// dispatcher, plus the CV, upload and music endpoints.
func setupRoutes(r chi.Router, db database.Database, handlers routeHandlers) {
	r.Route("/api", func(r chi.Router) {
		for _, res := range db.Resources() {
			mountResource(r, res)
		}

		// Singleton CV resource
		r.Get("/cv", handlers.cv.getCV())
		r.Post("/cv", handlers.cv.uploadCV())
		r.Delete("/cv", handlers.cv.deleteCV())

		// Media upload side-channel
		r.Post("/upload/image", handlers.upload.uploadImage())
		r.Post("/upload/cover", handlers.upload.uploadCover())

		// Music search integration
		r.Get("/music/token", handlers.music.getToken())
	})
}

// mountResource wires the decision table for one resource. Trash routes
// only exist for resources whose registry entry declares soft deletes.
func mountResource(r chi.Router, res database.Resource) {
	h := newResourceHandler(res)

	r.Route("/"+res.Name(), func(r chi.Router) {
		r.Get("/", h.list())
		r.Post("/", h.create())

		if res.Capabilities().SoftDeletes {
			r.Get("/trash", h.listTrashed())
			r.Delete("/trash", h.emptyTrash())
		}

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.get())
			r.Patch("/", h.update())
			r.Delete("/", h.delete())

			if res.Capabilities().SoftDeletes {
				r.Post("/restore", h.restore())
				r.Delete("/purge", h.purge())
			}
		})
	})
}
