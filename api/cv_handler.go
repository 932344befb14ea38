package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BicaMarius/digital-portofolio-sub001/database"
	"github.com/BicaMarius/digital-portofolio-sub001/errs"
	"github.com/BicaMarius/digital-portofolio-sub001/models"
	"github.com/BicaMarius/digital-portofolio-sub001/storage"
)

const maxCVSize = 10 << 20 // 10 MB

// cvHandler serves the singleton CV resource. The PDF lives in the object
// store; the row only carries metadata. At most one row exists at a time.
type cvHandler struct {
	responder Responder
	logger    zerolog.Logger
	cvRepo    *database.CVRepo
	store     storage.ObjectStorage
}

func newCVHandler(cvRepo *database.CVRepo, store storage.ObjectStorage) cvHandler {
	logger := log.With().Str("handlerName", "cvHandler").Logger()

	return cvHandler{
		responder: NewResponder(logger),
		logger:    logger,
		cvRepo:    cvRepo,
		store:     store,
	}
}

// getCV returns the current CV metadata, or JSON null when none exists.
func (h cvHandler) getCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cv, err := h.cvRepo.Current()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "CV", err))
			return
		}
		h.responder.WriteJSON(w, cv)
	}
}

// uploadCV replaces the CV. The new PDF is uploaded first, then the row is
// swapped in one transaction, and only afterwards is the displaced remote
// object deleted (best-effort). A crash mid-sequence therefore never
// leaves the site without a CV while a valid upload exists.
func (h cvHandler) uploadCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("missing file"))
			return
		}
		defer file.Close()

		// Pre-checks short-circuit before any remote call.
		if ct := header.Header.Get("Content-Type"); ct != "application/pdf" {
			h.responder.WriteError(w, errs.NewUnsupportedMediaTypeError(ct, "application/pdf"))
			return
		}
		if header.Size > maxCVSize {
			h.responder.WriteError(w, errs.NewFileTooLargeError(header.Size, maxCVSize))
			return
		}

		data, err := io.ReadAll(io.LimitReader(file, maxCVSize+1))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read file"))
			return
		}
		if int64(len(data)) > maxCVSize {
			h.responder.WriteError(w, errs.NewFileTooLargeError(int64(len(data)), maxCVSize))
			return
		}

		key := "cv/" + uuid.New().String() + ".pdf"
		fileURL, err := h.store.Upload(r.Context(), key, data, "application/pdf")
		if err != nil {
			h.responder.WriteError(w, errs.NewUploadError(err))
			return
		}

		fresh := models.CV{
			FileName:   header.Filename,
			FileURL:    fileURL,
			StorageKey: key,
			UploadedAt: time.Now().UTC(),
		}
		displaced, err := h.cvRepo.Replace(&fresh)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("replace", "CV", err))
			return
		}

		if displaced != nil {
			h.deleteRemote(r.Context(), displaced.StorageKey)
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, fresh)
	}
}

// deleteCV removes the CV row and, best-effort, its remote object.
func (h cvHandler) deleteCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cv, err := h.cvRepo.Current()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "CV", err))
			return
		}
		if cv == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("CV data not found"))
			return
		}

		// Remote deletion first, non-fatal on error.
		h.deleteRemote(r.Context(), cv.StorageKey)

		if _, err := h.cvRepo.Delete(); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "CV", err))
			return
		}
		h.responder.WriteNoContent(w)
	}
}

// deleteRemote asks the object store to remove key. Failures are logged
// and swallowed; the local row operation proceeds regardless.
func (h cvHandler) deleteRemote(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := h.store.Delete(ctx, key); err != nil {
		h.logger.Error().Err(err).Str("key", key).Msg("failed to delete remote CV object")
	}
}
