package services

import (
	"context"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
)

type mockMetadata struct {
	hits      []domain.CandidateSong
	searchErr error
	songs     map[string]domain.FullSong
	songErr   error

	searched   []string
	fetchedIDs []string
	fetchOpts  []domain.FetchOptions
}

func (m *mockMetadata) Search(ctx context.Context, text string) ([]domain.CandidateSong, error) {
	m.searched = append(m.searched, text)
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.hits, nil
}

func (m *mockMetadata) GetFullRecord(ctx context.Context, id string, opts domain.FetchOptions) (domain.FullSong, error) {
	m.fetchedIDs = append(m.fetchedIDs, id)
	m.fetchOpts = append(m.fetchOpts, opts)
	if m.songErr != nil {
		return domain.FullSong{}, m.songErr
	}
	song, ok := m.songs[id]
	if !ok {
		return domain.FullSong{}, domain.ErrNotFound
	}
	return song, nil
}

type mockStreaming struct {
	authErr     error
	result      domain.TrackSearchResult
	searchErr   error
	features    map[string]domain.AudioFeatures
	featuresErr error

	authCalls       int
	queries         []string
	featureRequests []string
}

func (m *mockStreaming) Authenticate(ctx context.Context) error {
	m.authCalls++
	return m.authErr
}

func (m *mockStreaming) SearchTracks(ctx context.Context, query string) (domain.TrackSearchResult, error) {
	m.queries = append(m.queries, query)
	if m.searchErr != nil {
		return domain.TrackSearchResult{}, m.searchErr
	}
	return m.result, nil
}

func (m *mockStreaming) GetAudioFeatures(ctx context.Context, trackID string) (domain.AudioFeatures, error) {
	m.featureRequests = append(m.featureRequests, trackID)
	if m.featuresErr != nil {
		return domain.AudioFeatures{}, m.featuresErr
	}
	f, ok := m.features[trackID]
	if !ok {
		return domain.AudioFeatures{}, domain.ErrNotFound
	}
	return f, nil
}

func hits(n int) []domain.CandidateSong {
	out := make([]domain.CandidateSong, 0, n)
	for i := 1; i <= n; i++ {
		id := itoa(i)
		out = append(out, domain.CandidateSong{
			ID:       id,
			Title:    "Song " + id,
			Artist:   "Artist " + id,
			ImageURL: "https://img.test/" + id + ".jpg",
			URL:      "https://genius.test/songs/" + id,
		})
	}
	return out
}

func itoa(i int) string {
	const digits = "0123456789"
	if i < 10 {
		return digits[i : i+1]
	}
	return itoa(i/10) + digits[i%10:i%10+1]
}

func event(source domain.InvocationSource, intent string, slots domain.Slots, session domain.SessionAttributes) domain.LexEvent {
	return domain.LexEvent{
		InvocationSource:  source,
		CurrentIntent:     domain.Intent{Name: intent, Slots: slots},
		SessionAttributes: session,
	}
}
