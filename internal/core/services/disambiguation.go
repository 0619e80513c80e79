package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
)

const (
	whichSongMessage = "Which song did you mean?"

	// Lex response card limits.
	maxButtonsPerAttachment = 5
	maxButtonTextLen        = 15
)

// Disambiguation serves the WrongLyricData intent: it offers the alternates
// of the previous lookup and, once the user picks one, looks it up.
type Disambiguation struct {
	lookup *Lookup
	log    *zap.Logger
}

// NewDisambiguation constructs a Disambiguation that delegates to lookup.
func NewDisambiguation(lookup *Lookup, log *zap.Logger) *Disambiguation {
	if log == nil {
		log = zap.NewNop()
	}
	return &Disambiguation{lookup: lookup, log: log}
}

// Handle serves one WrongLyricData turn.
func (d *Disambiguation) Handle(ctx context.Context, event domain.LexEvent) (domain.LexResponse, error) {
	if event.InvocationSource == domain.DialogCodeHook {
		return d.prompt(event), nil
	}
	return d.lookup.Handle(ctx, event)
}

func (d *Disambiguation) prompt(event domain.LexEvent) domain.LexResponse {
	alts := domain.DecodeAlternates(event.SessionAttributes)
	d.log.Debug("offering alternates", zap.Int("count", len(alts)))

	slots := domain.Slots{
		domain.SlotSongID: nil,
		domain.SlotLyric:  nil,
	}

	var card *domain.ResponseCard
	if len(alts) > 0 {
		card = domain.NewResponseCard(alternateAttachments(alts))
	}

	return domain.ElicitSlot(event.SessionAttributes, domain.IntentWrongLyricData, slots, domain.SlotSongID, whichSongMessage, card)
}

// alternateAttachments lays the alternates out as buttons, at most five per
// attachment, keeping their order.
func alternateAttachments(alts []domain.Alternate) []domain.Attachment {
	attachments := make([]domain.Attachment, 0, (len(alts)+maxButtonsPerAttachment-1)/maxButtonsPerAttachment)
	for start := 0; start < len(alts); start += maxButtonsPerAttachment {
		end := min(start+maxButtonsPerAttachment, len(alts))

		buttons := make([]domain.Button, 0, end-start)
		for _, a := range alts[start:end] {
			buttons = append(buttons, domain.Button{
				Text:  truncate(a.Title+" by "+a.Artist, maxButtonTextLen),
				Value: a.ID,
			})
		}
		attachments = append(attachments, domain.Attachment{Title: whichSongMessage, Buttons: buttons})
	}
	return attachments
}
