package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BicaMarius/digital-portofolio-sub001/database"
	"github.com/BicaMarius/digital-portofolio-sub001/errs"
)

// resourceHandler serves the uniform CRUD contract for one registered
// resource. The same handler type is mounted for every resource kind; the
// registry entry decides which operations exist.
type resourceHandler struct {
	responder Responder
	logger    zerolog.Logger
	res       database.Resource
}

func newResourceHandler(res database.Resource) resourceHandler {
	logger := log.With().Str("handlerName", res.Name()+"Handler").Logger()

	return resourceHandler{
		responder: NewResponder(logger),
		logger:    logger,
		res:       res,
	}
}

// wrap passes through errors that already carry a status code and maps
// everything else through the database error taxonomy.
func (h resourceHandler) wrap(operation string, err error) error {
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return errs.NewDatabaseError(operation, h.res.Singular(), err)
}

func (h resourceHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := h.res.List()
		if err != nil {
			h.responder.WriteError(w, h.wrap("list", err))
			return
		}
		h.responder.WriteJSON(w, rows)
	}
}

func (h resourceHandler) listTrashed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := h.res.ListTrashed()
		if err != nil {
			h.responder.WriteError(w, h.wrap("list trashed", err))
			return
		}
		h.responder.WriteJSON(w, rows)
	}
}

func (h resourceHandler) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		row, err := h.res.Get(id)
		if err != nil {
			h.responder.WriteError(w, h.wrap("find", err))
			return
		}
		h.responder.WriteJSON(w, row)
	}
}

func (h resourceHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		row, err := h.res.Create(body)
		if err != nil {
			h.responder.WriteError(w, h.wrap("create", err))
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, row)
	}
}

func (h resourceHandler) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		row, err := h.res.Update(id, body)
		if err != nil {
			h.responder.WriteError(w, h.wrap("update", err))
			return
		}
		h.responder.WriteJSON(w, row)
	}
}

// delete soft-deletes when the resource declares trash support; otherwise
// the row is removed outright.
func (h resourceHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if h.res.Capabilities().SoftDeletes {
			row, err := h.res.SoftDelete(id)
			if err != nil {
				h.responder.WriteError(w, h.wrap("trash", err))
				return
			}
			h.responder.WriteJSON(w, row)
			return
		}

		if err := h.res.Delete(id); err != nil {
			h.responder.WriteError(w, h.wrap("delete", err))
			return
		}
		h.responder.WriteNoContent(w)
	}
}

func (h resourceHandler) purge() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.res.Delete(id); err != nil {
			h.responder.WriteError(w, h.wrap("purge", err))
			return
		}
		h.responder.WriteNoContent(w)
	}
}

func (h resourceHandler) restore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		row, err := h.res.Restore(id)
		if err != nil {
			h.responder.WriteError(w, h.wrap("restore", err))
			return
		}
		h.responder.WriteJSON(w, row)
	}
}

// emptyTrash purges every trashed row. Purges are independent; a failure
// on one row does not stop the rest, the count reflects what was removed.
func (h resourceHandler) emptyTrash() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		purged, err := h.res.EmptyTrash()
		if err != nil {
			h.logger.Error().Err(err).Int("purged", purged).Msg("trash only partially emptied")
			h.responder.WriteError(w, h.wrap("empty trash", err))
			return
		}
		h.responder.WriteJSON(w, map[string]int{"purged": purged})
	}
}

// parseID reads the {id} path segment as a base-10 integer. Anything else
// is a 400 Invalid ID, never a 404.
func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewInvalidIDError()
	}
	return id, nil
}
