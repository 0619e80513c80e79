package genius

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jch254/muzo-fulfillment-handler/internal/adapters/httpx"
	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
)

const searchBody = `{
	"meta": {"status": 200},
	"response": {
		"hits": [
			{
				"type": "song",
				"result": {
					"id": 101,
					"title": "Uptown Funk",
					"title_with_featured": "Uptown Funk (Ft. Bruno Mars)",
					"url": "https://genius.com/uptown",
					"song_art_image_thumbnail_url": "https://images.genius.com/uptown.jpg",
					"primary_artist": {"id": 1, "name": "Mark Ronson"}
				}
			},
			{
				"type": "song",
				"result": {
					"id": 102,
					"title": "Uptown Girl",
					"url": "https://genius.com/girl",
					"primary_artist": {"id": 2, "name": "Billy Joel"}
				}
			}
		]
	}
}`

const songBody = `{
	"meta": {"status": 200},
	"response": {
		"song": {
			"id": 42,
			"title": "Uptown Funk",
			"title_with_featured": "Uptown Funk (Ft. Bruno Mars)",
			"url": "https://genius.com/uptown",
			"song_art_image_thumbnail_url": "https://images.genius.com/uptown.jpg",
			"primary_artist": {"id": 1, "name": "Mark Ronson"},
			"album": {"id": 9, "name": "Uptown Special"},
			"release_date": "2014-11-10",
			"recording_location": null,
			"media": [
				{"provider": "youtube", "type": "video", "url": "https://youtube.com/watch?v=OPf0YbXqDm0"},
				{"provider": "spotify", "type": "audio", "url": "https://open.spotify.com/track/32OlwWuMpZ6b0aN2RZOeMS", "native_uri": "spotify:track:32OlwWuMpZ6b0aN2RZOeMS"}
			],
			"song_relationships": [
				{"relationship_type": "samples", "songs": [{"id": 7, "full_title": "All Gold Everything by Trinidad James"}]},
				{"type": "sampled_in", "songs": []}
			],
			"producer_artists": [{"id": 1, "name": "Mark Ronson"}, {"id": 3, "name": "Jeff Bhasker"}],
			"writer_artists": [{"id": 4, "name": "Bruno Mars"}]
		}
	}
}`

func newTestClient(url string) *Client {
	return NewClient(Options{
		BaseURL:     url,
		AccessToken: "test-token",
		Retry:       httpx.Options{MaxRetries: 1, BaseBackoff: time.Millisecond},
	})
}

func TestClient_Search(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantIDs   []string
		wantErr   error
		wantAnErr bool
	}{
		{
			name:    "maps hits in order",
			status:  http.StatusOK,
			body:    searchBody,
			wantIDs: []string{"101", "102"},
		},
		{
			name:    "empty hits",
			status:  http.StatusOK,
			body:    `{"meta":{"status":200},"response":{"hits":[]}}`,
			wantIDs: []string{},
		},
		{
			name:    "hit without artist is malformed",
			status:  http.StatusOK,
			body:    `{"meta":{"status":200},"response":{"hits":[{"type":"song","result":{"id":5,"title":"x"}}]}}`,
			wantErr: domain.ErrMalformedProviderResponse,
		},
		{
			name:      "unauthorized",
			status:    http.StatusUnauthorized,
			body:      `{"meta":{"status":401,"message":"invalid token"}}`,
			wantAnErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/search" {
					t.Errorf("Expected URL path /search, got %s", r.URL.Path)
				}
				if got := r.URL.Query().Get("q"); got != "uptown funk" {
					t.Errorf("q: got %q", got)
				}
				if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
					t.Errorf("Authorization: got %q", got)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			got, err := newTestClient(ts.URL).Search(context.Background(), "uptown funk")
			if tt.wantErr != nil || tt.wantAnErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("hits: got %d, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("hit %d: got id %s, want %s", i, got[i].ID, id)
				}
			}
			if len(got) > 0 {
				if got[0].Title != "Uptown Funk (Ft. Bruno Mars)" || got[0].Artist != "Mark Ronson" {
					t.Errorf("first hit: got %+v", got[0])
				}
				if got[1].Title != "Uptown Girl" {
					t.Errorf("title fallback: got %q", got[1].Title)
				}
			}
		})
	}
}

func TestClient_GetFullRecord(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/songs/42":
			if r.URL.Query().Get("text_format") != "plain" {
				t.Errorf("text_format: got %q", r.URL.Query().Get("text_format"))
			}
			_, _ = w.Write([]byte(songBody))
		case "/songs/7":
			_, _ = w.Write([]byte(`{"meta":{"status":200},"response":{"song":{"id":7,"url":"u","primary_artist":{"name":"a"}}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"meta":{"status":404,"message":"Not found"}}`))
		}
	}))
	defer ts.Close()

	client := newTestClient(ts.URL)

	t.Run("maps full record", func(t *testing.T) {
		song, err := client.GetFullRecord(context.Background(), "42", domain.FetchOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if song.ID != "42" || song.Title != "Uptown Funk" || song.TitleWithFeatured != "Uptown Funk (Ft. Bruno Mars)" {
			t.Errorf("identity: got %+v", song)
		}
		if song.Album == nil || *song.Album != "Uptown Special" {
			t.Errorf("album: got %v", song.Album)
		}
		if song.ReleaseDate == nil || *song.ReleaseDate != "2014-11-10" {
			t.Errorf("release date: got %v", song.ReleaseDate)
		}
		if song.RecordingLocation != nil {
			t.Errorf("recording location: expected nil, got %q", *song.RecordingLocation)
		}
		m, ok := song.MediaFor(domain.ProviderSpotify)
		if !ok || m.NativeURI != "spotify:track:32OlwWuMpZ6b0aN2RZOeMS" {
			t.Errorf("spotify media: got %+v", m)
		}
		if len(song.Samples) != 1 || song.Samples[0].FullTitle != "All Gold Everything by Trinidad James" {
			t.Errorf("samples: got %+v", song.Samples)
		}
		if len(song.SampledIn) != 0 {
			t.Errorf("sampled in: got %+v", song.SampledIn)
		}
		if len(song.Producers) != 2 || len(song.Writers) != 1 {
			t.Errorf("credits: producers %v writers %v", song.Producers, song.Writers)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := client.GetFullRecord(context.Background(), "1", domain.FetchOptions{})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("record without title", func(t *testing.T) {
		_, err := client.GetFullRecord(context.Background(), "7", domain.FetchOptions{})
		if !errors.Is(err, domain.ErrMalformedProviderResponse) {
			t.Fatalf("expected ErrMalformedProviderResponse, got %v", err)
		}
	})
}
