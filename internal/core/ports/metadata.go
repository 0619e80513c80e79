package ports

import (
	"context"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
)

// MetadataProvider searches songs and resolves full song records.
// GetFullRecord returns domain.ErrNotFound when the id is unknown.
type MetadataProvider interface {
	Search(ctx context.Context, text string) ([]domain.CandidateSong, error)
	GetFullRecord(ctx context.Context, id string, opts domain.FetchOptions) (domain.FullSong, error)
}
