package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/BicaMarius/digital-portofolio-sub001/config"
	"github.com/BicaMarius/digital-portofolio-sub001/database"
	"github.com/BicaMarius/digital-portofolio-sub001/services"
	"github.com/BicaMarius/digital-portofolio-sub001/storage"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

// routeHandlers contains the handlers that are not generated from the
// resource registry.
type routeHandlers struct {
	cv     cvHandler
	upload uploadHandler
	music  musicHandler
}

func NewServer(db database.Database, store storage.ObjectStorage) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	tokenSource := services.NewMusicTokenSource(
		config.GetString(c, "MUSIC_TOKEN_URL", "https://accounts.spotify.com/api/token"),
		config.GetString(c, "MUSIC_CLIENT_ID", ""),
		config.GetString(c, "MUSIC_CLIENT_SECRET", ""),
	)

	router := NewRouter(db, store, tokenSource)

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

// NewRouter builds the full route tree. Split out of NewServer so tests
// can drive it directly through httptest.
func NewRouter(db database.Database, store storage.ObjectStorage, tokenSource *services.MusicTokenSource) *chi.Mux {
	r := chi.NewRouter()
	r.Use(RecoverMiddleware)
	r.Use(ColoredHTTPLoggingMiddleware)

	// Every response, success or error, carries the CORS headers. The
	// admin flag lives client-side, so the API is deliberately open.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS", "PATCH", "DELETE", "POST", "PUT"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}))

	responder := NewResponder(log.With().Str("handlerName", "router").Logger())
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responder.WriteJSONStatus(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responder.WriteJSONStatus(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
	})

	handlers := routeHandlers{
		cv:     newCVHandler(db.CVRepo(), store),
		upload: newUploadHandler(store),
		music:  newMusicHandler(tokenSource),
	}

	setupRoutes(r, db, handlers)
	return r
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
