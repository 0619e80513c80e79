package services

import (
	"testing"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
)

func TestFormatReply(t *testing.T) {
	album := "Uptown Special"
	released := "November 10, 2014"
	studio := "Daptone Studios"

	tests := []struct {
		name     string
		song     domain.FullSong
		features *domain.AudioFeatures
		want     string
	}{
		{
			name: "title and artist only",
			song: domain.FullSong{Title: "Plain", TitleWithFeatured: "Plain", Artist: "Someone"},
			want: "Title: Plain\nArtist: Someone",
		},
		{
			name: "optional lines in order",
			song: domain.FullSong{
				Title:             "Uptown Funk",
				TitleWithFeatured: "Uptown Funk (Ft. Bruno Mars)",
				Artist:            "Mark Ronson",
				Album:             &album,
				ReleaseDate:       &released,
				RecordingLocation: &studio,
			},
			features: &domain.AudioFeatures{Tempo: 114.988, Key: 0, Mode: domain.Minor},
			want: "Title: Uptown Funk (Ft. Bruno Mars)\n" +
				"Artist: Mark Ronson\n" +
				"Album: Uptown Special\n" +
				"Release date: November 10, 2014\n" +
				"Recorded at: Daptone Studios\n" +
				"BPM: 115\n" +
				"Key: C Minor",
		},
		{
			name: "singular and plural blocks",
			song: domain.FullSong{
				Title:     "Flip",
				Artist:    "DJ",
				Samples:   []domain.RelatedSong{{FullTitle: "Old One by Band"}},
				SampledIn: []domain.RelatedSong{{FullTitle: "New One by Rapper"}, {FullTitle: "Newer by MC"}},
				Producers: []string{"Producer A", "Producer B"},
				Writers:   []string{"Writer A"},
			},
			features: &domain.AudioFeatures{Tempo: 90.5, Key: 11, Mode: domain.Major},
			want: "Title: Flip\nArtist: DJ\nBPM: 91\nKey: B Major" +
				"\n\nSample\n- Old One by Band" +
				"\n\nSampled in\n- New One by Rapper\n- Newer by MC" +
				"\n\nProducers\n- Producer A\n- Producer B" +
				"\n\nWriter\n- Writer A",
		},
		{
			name:     "skips key when provider detected none",
			song:     domain.FullSong{Title: "Noise", Artist: "Drone"},
			features: &domain.AudioFeatures{Tempo: 60, Key: -1, Mode: domain.Major},
			want:     "Title: Noise\nArtist: Drone\nBPM: 60",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatReply(tc.song, tc.features)
			if got != tc.want {
				t.Fatalf("FormatReply:\ngot:\n%s\nwant:\n%s", got, tc.want)
			}
		})
	}
}

func TestFormatReply_Deterministic(t *testing.T) {
	album := "A"
	song := domain.FullSong{
		Title:     "Same",
		Artist:    "Twice",
		Album:     &album,
		Producers: []string{"P"},
		Writers:   []string{"W1", "W2"},
	}
	features := &domain.AudioFeatures{Tempo: 128, Key: 5, Mode: domain.Major}

	first := FormatReply(song, features)
	second := FormatReply(song, features)
	if first != second {
		t.Fatalf("expected identical output, got:\n%s\nand:\n%s", first, second)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "short string untouched", in: "abc", n: 80, want: "abc"},
		{name: "cuts ascii", in: "abcdef", n: 3, want: "abc"},
		{name: "does not split runes", in: "déjà vu", n: 4, want: "déjà"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.n); got != tc.want {
				t.Fatalf("truncate: got %q, want %q", got, tc.want)
			}
		})
	}
}
