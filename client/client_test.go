package client

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BicaMarius/digital-portofolio-sub001/api"
	"github.com/BicaMarius/digital-portofolio-sub001/database"
	"github.com/BicaMarius/digital-portofolio-sub001/models"
	"github.com/BicaMarius/digital-portofolio-sub001/services"
	"github.com/BicaMarius/digital-portofolio-sub001/storage"
)

// newTestServer runs the real router over an in-memory database so client
// calls exercise the full request path.
func newTestServer(t *testing.T) (*Client, *storage.MemoryStorage) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:client_%s?mode=memory&cache=shared", name)
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
	srv := httptest.NewServer(api.NewRouter(database.New(db), store, tokenSource))
	t.Cleanup(srv.Close)

	return New(srv.URL, WithHTTPClient(srv.Client())), store
}

func TestClientProjectLifecycle(t *testing.T) {
	c, _ := newTestServer(t)
	ctx := context.Background()

	created, err := c.CreateProject(ctx, models.Project{Title: "Atelier", Description: "lemn și metal"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := c.Project(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Atelier", fetched.Title)

	updated, err := c.UpdateProject(ctx, created.ID, map[string]any{"description": "doar lemn"})
	require.NoError(t, err)
	assert.Equal(t, "Atelier", updated.Title, "patch must not clear untouched fields")
	assert.Equal(t, "doar lemn", updated.Description)

	require.NoError(t, c.DeleteProject(ctx, created.ID))

	live, err := c.Projects(ctx)
	require.NoError(t, err)
	assert.Empty(t, live)

	trashed, err := c.TrashedProjects(ctx)
	require.NoError(t, err)
	require.Len(t, trashed, 1)
	require.NotNil(t, trashed[0].DeletedAt)

	restored, err := c.RestoreProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, restored.DeletedAt)

	require.NoError(t, c.DeleteProject(ctx, created.ID))
	require.NoError(t, c.PurgeProject(ctx, created.ID))

	_, err = c.Project(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestClientErrors(t *testing.T) {
	c, _ := newTestServer(t)
	ctx := context.Background()

	t.Run("not found carries the status code", func(t *testing.T) {
		_, err := c.Project(ctx, 424242)
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.True(t, IsNotFound(err))
	})

	t.Run("validation issues are flattened into the message", func(t *testing.T) {
		_, err := c.CreateProject(ctx, models.Project{})
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.StatusCode)
		assert.NotEmpty(t, apiErr.Message)
		assert.False(t, IsNotFound(err))
	})

	t.Run("duplicate tag is a conflict", func(t *testing.T) {
		_, err := c.CreateTag(ctx, models.Tag{Name: "mare", Type: "Poezie"})
		require.NoError(t, err)

		_, err = c.CreateTag(ctx, models.Tag{Name: "mare", Type: "Poezie"})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 409, apiErr.StatusCode)
	})
}

func TestClientAlbumOrder(t *testing.T) {
	c, _ := newTestServer(t)
	ctx := context.Background()

	created, err := c.CreateAlbum(ctx, models.Album{Name: "Vara 2025", ItemIDs: []int64{5, 3, 5}})
	require.NoError(t, err)

	fetched, err := c.Album(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 3, 5}, []int64(fetched.ItemIDs), "item order is the display order")
}

func TestClientCV(t *testing.T) {
	c, store := newTestServer(t)
	ctx := context.Background()

	cv, err := c.CV(ctx)
	require.NoError(t, err)
	assert.Nil(t, cv, "missing CV decodes as nil, not an error")

	uploaded, err := c.UploadCV(ctx, "cv.pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", uploaded.FileName)
	assert.NotEmpty(t, uploaded.FileURL)
	require.Len(t, store.Keys(), 1)

	cv, err = c.CV(ctx)
	require.NoError(t, err)
	require.NotNil(t, cv)
	assert.Equal(t, "cv.pdf", cv.FileName)

	require.NoError(t, c.DeleteCV(ctx))
	assert.Empty(t, store.Keys())

	err = c.DeleteCV(ctx)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestClientUploads(t *testing.T) {
	c, store := newTestServer(t)
	ctx := context.Background()

	result, err := c.UploadImage(ctx, "writings", "p.png", "image/png", []byte("pngdata"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.PublicID, "writings/"))
	assert.True(t, store.Has(result.PublicID))

	cover, err := c.UploadCover(ctx, "cover.jpg", "image/jpeg", []byte("jpegdata"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cover.PublicID, "covers/"))
}
