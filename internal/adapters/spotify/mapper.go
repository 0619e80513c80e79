package spotify

import "github.com/jch254/muzo-fulfillment-handler/internal/core/domain"

func malformed(field string) error {
	return &domain.MalformedProviderResponseError{Provider: providerName, Field: field}
}

// mapTrackToDomain converts a raw Spotify track to a domain.StreamingTrack.
func mapTrackToDomain(st spotifyTrack) (domain.StreamingTrack, error) {
	if st.ID == "" {
		return domain.StreamingTrack{}, malformed("id")
	}
	return domain.StreamingTrack{
		ID:   st.ID,
		Name: st.Name,
		URL:  st.ExternalURLs.Spotify,
	}, nil
}

// mapFeaturesToDomain validates the audio analysis fields the reply uses.
// A key of -1 means none was detected and is passed through.
func mapFeaturesToDomain(f spotifyAudioFeatures) (domain.AudioFeatures, error) {
	if f.Tempo == nil || *f.Tempo <= 0 {
		return domain.AudioFeatures{}, malformed("tempo")
	}
	if f.Key == nil || *f.Key < -1 || *f.Key > 11 {
		return domain.AudioFeatures{}, malformed("key")
	}
	if f.Mode == nil || !domain.Mode(*f.Mode).Valid() {
		return domain.AudioFeatures{}, malformed("mode")
	}
	return domain.AudioFeatures{
		Tempo: *f.Tempo,
		Key:   domain.PitchClass(*f.Key),
		Mode:  domain.Mode(*f.Mode),
	}, nil
}
