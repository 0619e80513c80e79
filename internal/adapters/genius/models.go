package genius

// envelope wraps every Genius API response.
type envelope[T any] struct {
	Meta struct {
		Status  int    `json:"status"`
		Message string `json:"message,omitempty"`
	} `json:"meta"`
	Response T `json:"response"`
}

type searchResponse struct {
	Hits []geniusHit `json:"hits"`
}

type geniusHit struct {
	Type   string     `json:"type"`
	Result geniusSong `json:"result"`
}

type songResponse struct {
	Song *geniusSong `json:"song"`
}

type geniusArtist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type geniusAlbum struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type geniusMedia struct {
	Provider  string `json:"provider"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	NativeURI string `json:"native_uri,omitempty"`
}

type geniusRelationship struct {
	// Older API versions send "type", newer ones "relationship_type".
	Type             string       `json:"type"`
	RelationshipType string       `json:"relationship_type"`
	Songs            []geniusSong `json:"songs"`
}

// geniusSong covers both search hits and full song records; fields only
// present on full records are left zero on hits.
type geniusSong struct {
	ID                       int64                `json:"id"`
	Title                    string               `json:"title"`
	TitleWithFeatured        string               `json:"title_with_featured"`
	FullTitle                string               `json:"full_title"`
	URL                      string               `json:"url"`
	SongArtImageThumbnailURL string               `json:"song_art_image_thumbnail_url"`
	PrimaryArtist            *geniusArtist        `json:"primary_artist"`
	Album                    *geniusAlbum         `json:"album"`
	ReleaseDate              *string              `json:"release_date"`
	RecordingLocation        *string              `json:"recording_location"`
	Media                    []geniusMedia        `json:"media"`
	SongRelationships        []geniusRelationship `json:"song_relationships"`
	ProducerArtists          []geniusArtist       `json:"producer_artists"`
	WriterArtists            []geniusArtist       `json:"writer_artists"`
}
