// Package spotify implements the streaming provider port against the
// Spotify Web API.
package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/jch254/muzo-fulfillment-handler/internal/adapters/httpx"
	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
	"github.com/jch254/muzo-fulfillment-handler/internal/core/ports"
)

const (
	DefaultBaseURL  = "https://api.spotify.com/v1"
	DefaultTokenURL = "https://accounts.spotify.com/api/token"

	providerName = "spotify"
)

// ErrNotAuthenticated is returned when a catalog call is made before a
// successful Authenticate.
var ErrNotAuthenticated = errors.New("spotify adapter: not authenticated")

// Client is an HTTP client for the Spotify adapter.
type Client struct {
	httpClient  *http.Client
	doer        *httpx.Doer
	baseURL     string
	credentials *clientcredentials.Config

	mu    sync.Mutex
	token *oauth2.Token
}

// compile-time interface assertion
var _ ports.StreamingProvider = (*Client)(nil)

// Options configures a Client.
type Options struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	TokenURL     string
	HTTPClient   *http.Client
	Retry        httpx.Options
	Logger       *zap.Logger
}

// NewClient constructs a new Spotify client.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	tokenURL := opts.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	retry := opts.Retry
	retry.Name = providerName
	if retry.Logger == nil {
		retry.Logger = opts.Logger
	}

	return &Client{
		httpClient: httpClient,
		doer:       httpx.New(httpClient, retry),
		baseURL:    baseURL,
		credentials: &clientcredentials.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
	}
}

// Authenticate performs the client-credentials grant and keeps the access
// token for subsequent calls. A still-valid token is reused.
func (c *Client) Authenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token.Valid() {
		return nil
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.credentials.Token(ctx)
	if err != nil {
		return fmt.Errorf("spotify adapter: client credentials grant: %w", err)
	}
	c.token = token
	return nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token == nil {
		return ErrNotAuthenticated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	token.SetAuthHeader(req)

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Revoked or expired early; the next Authenticate fetches a new one.
		c.mu.Lock()
		if c.token == token {
			c.token = nil
		}
		c.mu.Unlock()
		return fmt.Errorf("status %d: access token rejected", resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", malformed(""), err)
	}
	return nil
}
