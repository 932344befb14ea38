package api

import (
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BicaMarius/digital-portofolio-sub001/errs"
	"github.com/BicaMarius/digital-portofolio-sub001/storage"
)

const maxImageSize = 20 << 20 // 20 MB

// uploadHandler serves the generic image upload side-channel. Handlers
// return the public URL plus the storage key; callers persist both on the
// row the image belongs to.
type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.ObjectStorage
}

func newUploadHandler(store storage.ObjectStorage) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

type uploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// uploadImage handles POST /api/upload/image. An optional "folder" form
// field namespaces the storage key.
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folder := r.FormValue("folder")
		if folder == "" {
			folder = "gallery"
		}

		result, err := h.storeImage(r, folder)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, result)
	}
}

// uploadCover handles POST /api/upload/cover for album cover images.
func (h uploadHandler) uploadCover() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.storeImage(r, "covers")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, result)
	}
}

func (h uploadHandler) storeImage(r *http.Request, folder string) (*uploadResult, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, errs.NewBadRequestError("missing file")
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, errs.NewUnsupportedMediaTypeError(contentType, "image/*")
	}
	if header.Size > maxImageSize {
		return nil, errs.NewFileTooLargeError(header.Size, maxImageSize)
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		return nil, errs.NewBadRequestError("failed to read file")
	}
	if int64(len(data)) > maxImageSize {
		return nil, errs.NewFileTooLargeError(int64(len(data)), maxImageSize)
	}

	key := folder + "/" + uuid.New().String() + path.Ext(header.Filename)
	url, err := h.store.Upload(r.Context(), key, data, contentType)
	if err != nil {
		return nil, errs.NewUploadError(err)
	}

	h.logger.Debug().Str("key", key).Msg("stored image")
	return &uploadResult{URL: url, PublicID: key}, nil
}
