package spotify

// spotifyTrack represents a track object of the Spotify API.
type spotifyTrack struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
}

// searchResponse is the body of GET /search?type=track.
type searchResponse struct {
	Tracks struct {
		Total int            `json:"total"`
		Items []spotifyTrack `json:"items"`
	} `json:"tracks"`
}

// spotifyAudioFeatures is the body of GET /audio-features/{id}.
type spotifyAudioFeatures struct {
	ID    string   `json:"id"`
	Tempo *float64 `json:"tempo"`
	Key   *int     `json:"key"`
	Mode  *int     `json:"mode"`
}
