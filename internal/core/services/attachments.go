package services

import "github.com/jch254/muzo-fulfillment-handler/internal/core/domain"

const maxCardTextLen = 80

// linkPriority is the order in which provider links become cards.
var linkPriority = []string{
	domain.ProviderSpotify,
	domain.ProviderAppleMusic,
	domain.ProviderSoundCloud,
	domain.ProviderYouTube,
}

// BuildAttachments returns one card per available link. streamingURL
// overrides the song's own streaming link when enrichment found one through
// search. The canonical page is always the last card.
func BuildAttachments(song domain.FullSong, streamingURL string) []domain.Attachment {
	title := truncate(displayTitle(song), maxCardTextLen)
	artist := truncate(song.Artist, maxCardTextLen)

	card := func(link string) domain.Attachment {
		return domain.Attachment{
			Title:             title,
			SubTitle:          artist,
			ImageURL:          song.ImageURL,
			AttachmentLinkURL: link,
		}
	}

	attachments := make([]domain.Attachment, 0, len(linkPriority)+1)
	for _, provider := range linkPriority {
		url := ""
		if m, ok := song.MediaFor(provider); ok {
			url = m.URL
		}
		if provider == domain.ProviderSpotify && streamingURL != "" {
			url = streamingURL
		}
		if url != "" {
			attachments = append(attachments, card(url))
		}
	}

	return append(attachments, card(song.URL))
}
