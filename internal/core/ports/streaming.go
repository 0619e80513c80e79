package ports

import (
	"context"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
)

// StreamingProvider exposes the streaming catalog and its audio analysis.
// Authenticate must succeed before the other calls are made.
type StreamingProvider interface {
	Authenticate(ctx context.Context) error
	SearchTracks(ctx context.Context, query string) (domain.TrackSearchResult, error)
	GetAudioFeatures(ctx context.Context, trackID string) (domain.AudioFeatures, error)
}
