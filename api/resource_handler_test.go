package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BicaMarius/digital-portofolio-sub001/database"
	"github.com/BicaMarius/digital-portofolio-sub001/services"
	"github.com/BicaMarius/digital-portofolio-sub001/storage"
)

func newTestRouter(t *testing.T) (*chi.Mux, *storage.MemoryStorage) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	store := storage.NewMemoryStorage()
	tokenSource := services.NewMusicTokenSource("http://127.0.0.1:0", "", "")
	return NewRouter(database.New(db), store, tokenSource), store
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Origin", "https://example.com")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestResourceRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("empty list is an array", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/projects", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("create returns 201 with the generated id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/projects", `{"title":"Atelier"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "Atelier", body["title"])
		assert.NotZero(t, body["id"])
	})

	t.Run("validation failure returns the issues array", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/projects", `{"description":"fără titlu"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeBody(t, rec)
		_, isArray := body["error"].([]any)
		assert.True(t, isArray, "validation errors must surface as an array")
	})

	t.Run("non numeric id is a 400 not a 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/projects/abc", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid ID", decodeBody(t, rec)["error"])
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
			rec := doJSON(t, router, method, "/api/projects/987654", `{"title":"x"}`)
			assert.Equal(t, http.StatusNotFound, rec.Code, method)
		}
	})

	t.Run("unsupported method combination is a 405", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/api/projects/1", `{"title":"x"}`)
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "Method not allowed", decodeBody(t, rec)["error"])

		rec = doJSON(t, router, http.MethodPatch, "/api/projects", `{"title":"x"}`)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

		rec = doJSON(t, router, http.MethodDelete, "/api/tags", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("unknown resource is a 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/unicorns", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPartialUpdateRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/writings", `{"title":"Seara","content":"vers unu","published":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := int(decodeBody(t, rec)["id"].(float64))

	rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/writings/%d", id), `{"content":"vers doi"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Seara", body["title"])
	assert.Equal(t, "vers doi", body["content"])
	assert.Equal(t, true, body["published"])
}

func TestTrashRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/films", `{"title":"Reconstituirea","year":1968,"rating":10}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := int(decodeBody(t, rec)["id"].(float64))

	t.Run("delete on a soft-deletable resource trashes the row", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/films/%d", id), "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, decodeBody(t, rec)["deletedAt"])

		rec = doJSON(t, router, http.MethodGet, "/api/films", "")
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

		rec = doJSON(t, router, http.MethodGet, "/api/films/trash", "")
		var trashed []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trashed))
		require.Len(t, trashed, 1)
	})

	t.Run("restore brings the row back", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/films/%d/restore", id), "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, decodeBody(t, rec)["deletedAt"])

		rec = doJSON(t, router, http.MethodGet, "/api/films/trash", "")
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("purge removes the row for good", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/films/%d/purge", id), "")
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/films/%d", id), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty trash purges everything trashed", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			rec := doJSON(t, router, http.MethodPost, "/api/films", fmt.Sprintf(`{"title":"Film %d"}`, i))
			filmID := int(decodeBody(t, rec)["id"].(float64))
			doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/films/%d", filmID), "")
		}

		rec := doJSON(t, router, http.MethodDelete, "/api/films/trash", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), decodeBody(t, rec)["purged"])
	})

	t.Run("trash routes do not exist for plain resources", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/tags/trash", "")
		// "trash" falls into the {id} pattern and fails integer parsing
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTagConflictRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/tags", `{"name":"mare","type":"Poezie"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/tags", `{"name":"mare","type":"Poezie"}`)
	assert.Equal(t, http.StatusConflict, rec.Code, "duplicate tag name must not be silently accepted")
}

func TestCORSHeaders(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("headers ride along on plain requests", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/projects", "")
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("headers ride along on error responses", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/projects/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
