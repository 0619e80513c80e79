// Package genius implements the metadata provider port against the Genius
// REST API.
package genius

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/jch254/muzo-fulfillment-handler/internal/adapters/httpx"
	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
	"github.com/jch254/muzo-fulfillment-handler/internal/core/ports"
)

// DefaultBaseURL is the public Genius API.
const DefaultBaseURL = "https://api.genius.com"

// Client is an HTTP client for the Genius adapter.
type Client struct {
	doer    *httpx.Doer
	baseURL string
}

// compile-time interface assertion
var _ ports.MetadataProvider = (*Client)(nil)

// Options configures a Client.
type Options struct {
	BaseURL     string
	AccessToken string
	HTTPClient  *http.Client
	Retry       httpx.Options
	Logger      *zap.Logger
}

// NewClient constructs a Genius client authenticating with a static bearer
// token.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	ctx := context.Background()
	if opts.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, opts.HTTPClient)
	}
	authed := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.AccessToken}))

	retry := opts.Retry
	retry.Name = providerName
	if retry.Logger == nil {
		retry.Logger = opts.Logger
	}

	return &Client{
		doer:    httpx.New(authed, retry),
		baseURL: baseURL,
	}
}

// Search returns the song hits for free text, in the provider's ranking.
func (c *Client) Search(ctx context.Context, text string) ([]domain.CandidateSong, error) {
	searchURL, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("genius adapter: invalid search url: %w", err)
	}
	query := searchURL.Query()
	query.Set("q", text)
	searchURL.RawQuery = query.Encode()

	var body envelope[searchResponse]
	if err := c.getJSON(ctx, searchURL.String(), &body); err != nil {
		return nil, fmt.Errorf("genius adapter: search: %w", err)
	}

	candidates := make([]domain.CandidateSong, 0, len(body.Response.Hits))
	for _, hit := range body.Response.Hits {
		if hit.Type != "" && hit.Type != "song" {
			continue
		}
		candidate, err := mapCandidate(hit.Result)
		if err != nil {
			return nil, fmt.Errorf("genius adapter: search: %w", err)
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// GetFullRecord fetches a song by id. Lyric bodies are not served by the
// API, so opts.FetchLyrics has no effect.
func (c *Client) GetFullRecord(ctx context.Context, id string, opts domain.FetchOptions) (domain.FullSong, error) {
	songURL := fmt.Sprintf("%s/songs/%s?text_format=plain", c.baseURL, url.PathEscape(id))

	var body envelope[songResponse]
	if err := c.getJSON(ctx, songURL, &body); err != nil {
		return domain.FullSong{}, fmt.Errorf("genius adapter: song %s: %w", id, err)
	}
	if body.Response.Song == nil {
		return domain.FullSong{}, fmt.Errorf("genius adapter: song %s: %w", id, malformed("song"))
	}

	song, err := mapFullSong(*body.Response.Song)
	if err != nil {
		return domain.FullSong{}, fmt.Errorf("genius adapter: song %s: %w", id, err)
	}
	return song, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
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
