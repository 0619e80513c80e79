package genius

import (
	"strconv"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
)

const providerName = "genius"

func malformed(field string) error {
	return &domain.MalformedProviderResponseError{Provider: providerName, Field: field}
}

// mapCandidate validates a search hit and converts it to a domain candidate.
func mapCandidate(gs geniusSong) (domain.CandidateSong, error) {
	if gs.ID == 0 {
		return domain.CandidateSong{}, malformed("id")
	}
	if gs.PrimaryArtist == nil {
		return domain.CandidateSong{}, malformed("primary_artist")
	}
	title := gs.TitleWithFeatured
	if title == "" {
		title = gs.Title
	}
	if title == "" {
		return domain.CandidateSong{}, malformed("title")
	}

	return domain.CandidateSong{
		ID:       strconv.FormatInt(gs.ID, 10),
		Title:    title,
		Artist:   gs.PrimaryArtist.Name,
		ImageURL: gs.SongArtImageThumbnailURL,
		URL:      gs.URL,
	}, nil
}

// mapFullSong validates a song record and converts it to a domain.FullSong.
func mapFullSong(gs geniusSong) (domain.FullSong, error) {
	if gs.ID == 0 {
		return domain.FullSong{}, malformed("id")
	}
	if gs.Title == "" {
		return domain.FullSong{}, malformed("title")
	}
	if gs.PrimaryArtist == nil {
		return domain.FullSong{}, malformed("primary_artist")
	}
	if gs.URL == "" {
		return domain.FullSong{}, malformed("url")
	}

	song := domain.FullSong{
		ID:                strconv.FormatInt(gs.ID, 10),
		Title:             gs.Title,
		TitleWithFeatured: gs.TitleWithFeatured,
		Artist:            gs.PrimaryArtist.Name,
		ReleaseDate:       nonEmpty(gs.ReleaseDate),
		RecordingLocation: nonEmpty(gs.RecordingLocation),
		ImageURL:          gs.SongArtImageThumbnailURL,
		URL:               gs.URL,
	}
	if song.TitleWithFeatured == "" {
		song.TitleWithFeatured = gs.Title
	}
	if gs.Album != nil && gs.Album.Name != "" {
		name := gs.Album.Name
		song.Album = &name
	}

	for _, m := range gs.Media {
		if m.URL == "" {
			continue
		}
		song.Media = append(song.Media, domain.MediaLink{
			Provider:  m.Provider,
			URL:       m.URL,
			NativeURI: m.NativeURI,
		})
	}

	for _, r := range gs.SongRelationships {
		kind := r.RelationshipType
		if kind == "" {
			kind = r.Type
		}
		switch kind {
		case "samples":
			song.Samples = append(song.Samples, relatedSongs(r.Songs)...)
		case "sampled_in":
			song.SampledIn = append(song.SampledIn, relatedSongs(r.Songs)...)
		}
	}

	song.Producers = artistNames(gs.ProducerArtists)
	song.Writers = artistNames(gs.WriterArtists)

	return song, nil
}

func relatedSongs(songs []geniusSong) []domain.RelatedSong {
	out := make([]domain.RelatedSong, 0, len(songs))
	for _, s := range songs {
		title := s.FullTitle
		if title == "" {
			title = s.Title
		}
		if title == "" {
			continue
		}
		out = append(out, domain.RelatedSong{ID: strconv.FormatInt(s.ID, 10), FullTitle: title})
	}
	return out
}

func artistNames(artists []geniusArtist) []string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return names
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
