package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BicaMarius/digital-portofolio-sub001/errs"
	"github.com/BicaMarius/digital-portofolio-sub001/services"
)

type musicHandler struct {
	responder   Responder
	logger      zerolog.Logger
	tokenSource *services.MusicTokenSource
}

func newMusicHandler(tokenSource *services.MusicTokenSource) musicHandler {
	logger := log.With().Str("handlerName", "musicHandler").Logger()

	return musicHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		tokenSource: tokenSource,
	}
}

// getToken hands the frontend a short-lived token for the music search
// API so the client secret never leaves the server.
func (h musicHandler) getToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := h.tokenSource.Token(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to obtain music token", err))
			return
		}
		h.responder.WriteJSON(w, token)
	}
}
