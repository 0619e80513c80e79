package spotify

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
)

// GetAudioFeatures fetches tempo, key and mode for a track.
func (c *Client) GetAudioFeatures(ctx context.Context, trackID string) (domain.AudioFeatures, error) {
	featuresURL := fmt.Sprintf("%s/audio-features/%s", c.baseURL, url.PathEscape(trackID))

	var body spotifyAudioFeatures
	if err := c.getJSON(ctx, featuresURL, &body); err != nil {
		return domain.AudioFeatures{}, fmt.Errorf("spotify adapter: features %s: %w", trackID, err)
	}

	features, err := mapFeaturesToDomain(body)
	if err != nil {
		return domain.AudioFeatures{}, fmt.Errorf("spotify adapter: features %s: %w", trackID, err)
	}
	return features, nil
}
