package domain

import "strings"

// Media providers linked from a song record.
const (
	ProviderSpotify    = "spotify"
	ProviderAppleMusic = "apple_music"
	ProviderSoundCloud = "soundcloud"
	ProviderYouTube    = "youtube"
)

// CandidateSong is a search hit from the metadata provider.
type CandidateSong struct {
	ID       string
	Title    string // title with featured artists folded in
	Artist   string
	ImageURL string
	URL      string
}

// MediaLink is an external link attached to a song record.
type MediaLink struct {
	Provider  string
	URL       string
	NativeURI string // optional, e.g. "spotify:track:<id>"
}

// RelatedSong is a song referenced through a sample relationship.
type RelatedSong struct {
	ID        string
	FullTitle string
}

// FullSong is the enriched metadata record for one song.
type FullSong struct {
	ID                string
	Title             string
	TitleWithFeatured string
	Artist            string
	Album             *string
	ReleaseDate       *string
	RecordingLocation *string
	Media             []MediaLink
	Samples           []RelatedSong
	SampledIn         []RelatedSong
	Producers         []string
	Writers           []string
	ImageURL          string
	URL               string
}

// MediaFor returns the first media link whose provider matches name,
// ignoring case.
func (s FullSong) MediaFor(name string) (MediaLink, bool) {
	for _, m := range s.Media {
		if strings.EqualFold(m.Provider, name) {
			return m, true
		}
	}
	return MediaLink{}, false
}

// FetchOptions controls what GetFullRecord retrieves.
type FetchOptions struct {
	FetchLyrics bool
}

// StreamingTrack is a search hit from the streaming provider.
type StreamingTrack struct {
	ID   string
	Name string
	URL  string
}

// TrackSearchResult is the streaming provider's track search page.
type TrackSearchResult struct {
	Total int
	Items []StreamingTrack
}

// AudioFeatures is the audio analysis of a streaming track.
type AudioFeatures struct {
	Tempo float64
	Key   PitchClass
	Mode  Mode
}
