package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenEndpoint counts hits and answers like a client-credentials
// token endpoint.
func fakeTokenEndpoint(t *testing.T, expiresIn int, hits *int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++

		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "token request must carry basic auth")
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": fmt.Sprintf("token-%d", *hits),
			"expires_in":   expiresIn,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestMusicTokenSource(t *testing.T) {
	t.Run("fetches and caches", func(t *testing.T) {
		var hits int
		srv := fakeTokenEndpoint(t, 3600, &hits)
		source := NewMusicTokenSource(srv.URL, "client-id", "client-secret")

		first, err := source.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "token-1", first.AccessToken)
		assert.InDelta(t, 3600, first.ExpiresIn, 5)

		second, err := source.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "token-1", second.AccessToken, "a live token must be reused")
		assert.Equal(t, 1, hits)
	})

	t.Run("refreshes an already-expiring token", func(t *testing.T) {
		var hits int
		// expires in 5s, which is inside the library's refresh window
		srv := fakeTokenEndpoint(t, 5, &hits)
		source := NewMusicTokenSource(srv.URL, "client-id", "client-secret")

		_, err := source.Token(context.Background())
		require.NoError(t, err)

		refreshed, err := source.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "token-2", refreshed.AccessToken)
		assert.Equal(t, 2, hits)
	})

	t.Run("missing credentials fail fast", func(t *testing.T) {
		var hits int
		srv := fakeTokenEndpoint(t, 3600, &hits)
		source := NewMusicTokenSource(srv.URL, "", "")

		_, err := source.Token(context.Background())
		require.Error(t, err)
		assert.Equal(t, 0, hits, "no request should be made without credentials")
	})

	t.Run("non-200 from the endpoint is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad client", http.StatusUnauthorized)
		}))
		t.Cleanup(srv.Close)

		source := NewMusicTokenSource(srv.URL, "client-id", "wrong")
		_, err := source.Token(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("context cancellation aborts the fetch", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		t.Cleanup(srv.Close)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		source := NewMusicTokenSource(srv.URL, "client-id", "client-secret")
		_, err := source.Token(ctx)
		require.Error(t, err)
	})
}
