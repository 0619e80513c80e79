package spotify

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
)

const searchLimit = 5

// SearchTracks runs a catalog track search. query uses Spotify field
// filters, e.g. "track:Uptown Funk album:Uptown Special".
func (c *Client) SearchTracks(ctx context.Context, query string) (domain.TrackSearchResult, error) {
	searchURL, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return domain.TrackSearchResult{}, fmt.Errorf("spotify adapter: invalid search url: %w", err)
	}
	q := searchURL.Query()
	q.Set("q", query)
	q.Set("type", "track")
	q.Set("limit", fmt.Sprint(searchLimit))
	searchURL.RawQuery = q.Encode()

	var body searchResponse
	if err := c.getJSON(ctx, searchURL.String(), &body); err != nil {
		return domain.TrackSearchResult{}, fmt.Errorf("spotify adapter: search: %w", err)
	}

	result := domain.TrackSearchResult{
		Total: body.Tracks.Total,
		Items: make([]domain.StreamingTrack, 0, len(body.Tracks.Items)),
	}
	for _, item := range body.Tracks.Items {
		track, err := mapTrackToDomain(item)
		if err != nil {
			return domain.TrackSearchResult{}, fmt.Errorf("spotify adapter: search: %w", err)
		}
		result.Items = append(result.Items, track)
	}

	return result, nil
}
