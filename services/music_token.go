package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// MusicTokenSource hands out the client-credentials access token for the
// music search integration. Fetching and refreshing is delegated to
// oauth2/clientcredentials; the cached token is process-scoped and reused
// until the library considers it expired.
type MusicTokenSource struct {
	conf       *clientcredentials.Config
	httpClient *http.Client

	mu     sync.Mutex
	cached *oauth2.Token
}

// MusicToken is the shape handed to the frontend.
type MusicToken struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

func NewMusicTokenSource(tokenURL, clientID, clientSecret string) *MusicTokenSource {
	return &MusicTokenSource{
		conf: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			// Spotify-style endpoints want the credentials in the
			// Authorization header, not the form body.
			AuthStyle: oauth2.AuthStyleInHeader,
		},
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Token returns the cached token, fetching a fresh one when missing or
// expired.
func (s *MusicTokenSource) Token(ctx context.Context) (MusicToken, error) {
	if s.conf.ClientID == "" || s.conf.ClientSecret == "" {
		return MusicToken{}, errors.New("music search credentials are not configured")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached.Valid() {
		return asMusicToken(s.cached), nil
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	token, err := s.conf.Token(ctx)
	if err != nil {
		return MusicToken{}, err
	}

	s.cached = token
	log.Debug().Time("expiry", token.Expiry).Msg("refreshed music search token")

	return asMusicToken(token), nil
}

func asMusicToken(token *oauth2.Token) MusicToken {
	return MusicToken{
		AccessToken: token.AccessToken,
		ExpiresIn:   int(time.Until(token.Expiry).Seconds()),
	}
}
