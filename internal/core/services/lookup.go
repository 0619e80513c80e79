package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
	"github.com/jch254/muzo-fulfillment-handler/internal/core/ports"
)

const (
	noMatchesMessage      = "No matches found. Try another lyric or title."
	noMatchesLyricMessage = "No matches found for '%s'. Try another lyric or title."
)

// LookupOptions tunes the enrichment policy of the lookup handler.
type LookupOptions struct {
	// StrictTitleMatch only trusts a streaming search hit whose name equals
	// the metadata title exactly.
	StrictTitleMatch bool
}

// Lookup resolves a song from a lyric fragment or a song id, enriches it
// with streaming audio features, and replies with a summary and link cards.
type Lookup struct {
	metadata  ports.MetadataProvider
	streaming ports.StreamingProvider
	log       *zap.Logger
	opts      LookupOptions
}

// NewLookup constructs a Lookup.
func NewLookup(metadata ports.MetadataProvider, streaming ports.StreamingProvider, log *zap.Logger, opts LookupOptions) *Lookup {
	if log == nil {
		log = zap.NewNop()
	}
	return &Lookup{
		metadata:  metadata,
		streaming: streaming,
		log:       log,
		opts:      opts,
	}
}

// enrichment is what the streaming provider contributed to a reply.
type enrichment struct {
	streamingURL string
	features     *domain.AudioFeatures
}

// Handle serves one GetLyricData turn. Only credential and transport
// failures of the primary lookups are returned as errors; everything else
// resolves to a Close response.
func (l *Lookup) Handle(ctx context.Context, event domain.LexEvent) (domain.LexResponse, error) {
	slots := event.CurrentIntent.Slots
	lyric, hasLyric := slots.Get(domain.SlotLyric)
	songID, hasSongID := slots.Get(domain.SlotSongID)

	if !hasLyric && !hasSongID {
		return domain.Close(nil, noMatchesMessage, nil), nil
	}

	if err := l.streaming.Authenticate(ctx); err != nil {
		return domain.LexResponse{}, fmt.Errorf("lookup: streaming authentication: %w", err)
	}

	var matches []domain.CandidateSong
	if hasLyric {
		found, err := l.metadata.Search(ctx, lyric)
		if err != nil {
			return domain.LexResponse{}, fmt.Errorf("lookup: search %q: %w", lyric, err)
		}
		if len(found) == 0 {
			return domain.Close(nil, fmt.Sprintf(noMatchesLyricMessage, lyric), nil), nil
		}
		matches = found
	}

	primaryID := songID
	if !hasSongID {
		primaryID = matches[0].ID
	}

	song, err := l.metadata.GetFullRecord(ctx, primaryID, domain.FetchOptions{FetchLyrics: false})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Close(nil, noMatchesMessage, nil), nil
		}
		return domain.LexResponse{}, fmt.Errorf("lookup: song %s: %w", primaryID, err)
	}

	enriched := l.enrich(ctx, song)

	session := domain.SessionAttributes{}
	if !hasSongID {
		encoded, err := domain.EncodeAlternates(alternatesFrom(matches))
		if err != nil {
			return domain.LexResponse{}, fmt.Errorf("lookup: encode alternates: %w", err)
		}
		session[domain.SessionKeyAlternates] = encoded
	}

	card := domain.NewResponseCard(BuildAttachments(song, enriched.streamingURL))
	return domain.Close(session, FormatReply(song, enriched.features), card), nil
}

// enrich never fails: any provider error leaves the corresponding part of
// the reply out.
func (l *Lookup) enrich(ctx context.Context, song domain.FullSong) enrichment {
	if media, ok := song.MediaFor(domain.ProviderSpotify); ok {
		out := enrichment{streamingURL: media.URL}
		trackID := trackIDFromURI(media.NativeURI)
		if trackID == "" {
			l.log.Debug("streaming link has no native uri", zap.String("song_id", song.ID))
			return out
		}
		out.features = l.audioFeatures(ctx, song.ID, trackID)
		return out
	}

	query := "track:" + strings.TrimSpace(song.Title)
	if song.Album != nil {
		query += " album:" + strings.TrimSpace(*song.Album)
	}

	result, err := l.streaming.SearchTracks(ctx, query)
	if err != nil {
		l.log.Warn("streaming search failed, replying without enrichment",
			zap.String("song_id", song.ID), zap.Error(err))
		return enrichment{}
	}
	if result.Total == 0 || len(result.Items) == 0 {
		return enrichment{}
	}

	track := result.Items[0]
	if l.opts.StrictTitleMatch && track.Name != song.Title {
		l.log.Debug("streaming hit rejected by strict title match",
			zap.String("song_id", song.ID),
			zap.String("title", song.Title),
			zap.String("candidate", track.Name))
		return enrichment{}
	}

	return enrichment{
		streamingURL: track.URL,
		features:     l.audioFeatures(ctx, song.ID, track.ID),
	}
}

func (l *Lookup) audioFeatures(ctx context.Context, songID, trackID string) *domain.AudioFeatures {
	features, err := l.streaming.GetAudioFeatures(ctx, trackID)
	if err != nil {
		l.log.Warn("audio features unavailable",
			zap.String("song_id", songID), zap.String("track_id", trackID), zap.Error(err))
		return nil
	}
	return &features
}

// trackIDFromURI returns the trailing segment of a native uri such as
// "spotify:track:<id>".
func trackIDFromURI(uri string) string {
	if uri == "" {
		return ""
	}
	return strings.TrimSpace(uri[strings.LastIndex(uri, ":")+1:])
}

// alternatesFrom keeps hits 2 through 11; the first hit is the primary.
func alternatesFrom(matches []domain.CandidateSong) []domain.Alternate {
	if len(matches) <= 1 {
		return []domain.Alternate{}
	}
	rest := matches[1:]
	if len(rest) > domain.MaxAlternates {
		rest = rest[:domain.MaxAlternates]
	}
	alts := make([]domain.Alternate, 0, len(rest))
	for _, m := range rest {
		alts = append(alts, domain.Alternate{
			ID:       m.ID,
			Title:    truncate(m.Title, maxCardTextLen),
			Artist:   truncate(m.Artist, maxCardTextLen),
			ImageURL: m.ImageURL,
			URL:      m.URL,
		})
	}
	return alts
}
