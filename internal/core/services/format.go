package services

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
)

// FormatReply renders the plain-text summary of a song. features may be nil
// when enrichment was unavailable. The output depends only on its inputs.
func FormatReply(song domain.FullSong, features *domain.AudioFeatures) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Title: %s\nArtist: %s", displayTitle(song), song.Artist)

	if song.Album != nil {
		fmt.Fprintf(&b, "\nAlbum: %s", *song.Album)
	}
	if song.ReleaseDate != nil {
		fmt.Fprintf(&b, "\nRelease date: %s", *song.ReleaseDate)
	}
	if song.RecordingLocation != nil {
		fmt.Fprintf(&b, "\nRecorded at: %s", *song.RecordingLocation)
	}

	if features != nil {
		fmt.Fprintf(&b, "\nBPM: %.0f", math.Round(features.Tempo))
		if features.Key.Valid() && features.Mode.Valid() {
			fmt.Fprintf(&b, "\nKey: %s %s", features.Key, features.Mode)
		}
	}

	writeBlock(&b, pluralize("Sample", len(song.Samples)), relatedTitles(song.Samples))
	writeBlock(&b, "Sampled in", relatedTitles(song.SampledIn))
	writeBlock(&b, pluralize("Producer", len(song.Producers)), song.Producers)
	writeBlock(&b, pluralize("Writer", len(song.Writers)), song.Writers)

	return b.String()
}

func writeBlock(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n\n")
	b.WriteString(heading)
	for _, item := range items {
		b.WriteString("\n- ")
		b.WriteString(item)
	}
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func relatedTitles(songs []domain.RelatedSong) []string {
	titles := make([]string, 0, len(songs))
	for _, s := range songs {
		titles = append(titles, s.FullTitle)
	}
	return titles
}

func displayTitle(song domain.FullSong) string {
	if song.TitleWithFeatured != "" {
		return song.TitleWithFeatured
	}
	return song.Title
}

// truncate cuts s to at most n characters without splitting a rune.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
