package observability

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
	"github.com/jch254/muzo-fulfillment-handler/internal/core/ports"
)

type instrumentedMetadata struct {
	next     ports.MetadataProvider
	provider string
	log      *zap.Logger
	metrics  *Metrics
}

// InstrumentMetadata wraps a metadata provider so that every call is logged
// and counted. A nil metrics disables counting.
func InstrumentMetadata(next ports.MetadataProvider, provider string, log *zap.Logger, metrics *Metrics) ports.MetadataProvider {
	if log == nil {
		log = zap.NewNop()
	}
	return &instrumentedMetadata{
		next:     next,
		provider: provider,
		log:      log.With(zap.String("provider", provider)),
		metrics:  metrics,
	}
}

func (i *instrumentedMetadata) Search(ctx context.Context, text string) ([]domain.CandidateSong, error) {
	started := time.Now()
	i.log.Debug("provider request", zap.String("operation", "search"), zap.String("query", text))

	hits, err := i.next.Search(ctx, text)
	i.metrics.observe(i.provider, "search", started, err)
	if err != nil {
		logFailure(i.log, "search", started, err)
		return nil, err
	}

	i.log.Debug("provider response",
		zap.String("operation", "search"),
		zap.Int("hits", len(hits)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return hits, nil
}

func (i *instrumentedMetadata) GetFullRecord(ctx context.Context, id string, opts domain.FetchOptions) (domain.FullSong, error) {
	started := time.Now()
	i.log.Debug("provider request", zap.String("operation", "get_full_record"), zap.String("song_id", id))

	song, err := i.next.GetFullRecord(ctx, id, opts)
	i.metrics.observe(i.provider, "get_full_record", started, err)
	if err != nil {
		logFailure(i.log, "get_full_record", started, err)
		return domain.FullSong{}, err
	}

	i.log.Debug("provider response",
		zap.String("operation", "get_full_record"),
		zap.String("song_id", song.ID),
		zap.Int("media", len(song.Media)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return song, nil
}

type instrumentedStreaming struct {
	next     ports.StreamingProvider
	provider string
	log      *zap.Logger
	metrics  *Metrics
}

// InstrumentStreaming wraps a streaming provider so that every call is
// logged and counted. A nil metrics disables counting.
func InstrumentStreaming(next ports.StreamingProvider, provider string, log *zap.Logger, metrics *Metrics) ports.StreamingProvider {
	if log == nil {
		log = zap.NewNop()
	}
	return &instrumentedStreaming{
		next:     next,
		provider: provider,
		log:      log.With(zap.String("provider", provider)),
		metrics:  metrics,
	}
}

func (i *instrumentedStreaming) Authenticate(ctx context.Context) error {
	started := time.Now()
	i.log.Debug("provider request", zap.String("operation", "authenticate"))

	err := i.next.Authenticate(ctx)
	i.metrics.observe(i.provider, "authenticate", started, err)
	if err != nil {
		logFailure(i.log, "authenticate", started, err)
		return err
	}

	i.log.Debug("provider response", zap.String("operation", "authenticate"), zap.Duration("elapsed", time.Since(started)))
	return nil
}

func (i *instrumentedStreaming) SearchTracks(ctx context.Context, query string) (domain.TrackSearchResult, error) {
	started := time.Now()
	i.log.Debug("provider request", zap.String("operation", "search_tracks"), zap.String("query", query))

	res, err := i.next.SearchTracks(ctx, query)
	i.metrics.observe(i.provider, "search_tracks", started, err)
	if err != nil {
		logFailure(i.log, "search_tracks", started, err)
		return domain.TrackSearchResult{}, err
	}

	i.log.Debug("provider response",
		zap.String("operation", "search_tracks"),
		zap.Int("total", res.Total),
		zap.Int("items", len(res.Items)),
		zap.Duration("elapsed", time.Since(started)),
	)
	return res, nil
}

func (i *instrumentedStreaming) GetAudioFeatures(ctx context.Context, trackID string) (domain.AudioFeatures, error) {
	started := time.Now()
	i.log.Debug("provider request", zap.String("operation", "get_audio_features"), zap.String("track_id", trackID))

	features, err := i.next.GetAudioFeatures(ctx, trackID)
	i.metrics.observe(i.provider, "get_audio_features", started, err)
	if err != nil {
		logFailure(i.log, "get_audio_features", started, err)
		return domain.AudioFeatures{}, err
	}

	i.log.Debug("provider response",
		zap.String("operation", "get_audio_features"),
		zap.Float64("tempo", features.Tempo),
		zap.Duration("elapsed", time.Since(started)),
	)
	return features, nil
}

func logFailure(log *zap.Logger, operation string, started time.Time, err error) {
	log.Warn("provider call failed",
		zap.String("operation", operation),
		zap.Duration("elapsed", time.Since(started)),
		zap.Error(err),
	)
}
