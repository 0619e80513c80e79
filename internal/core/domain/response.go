package domain

// DialogActionType is the next step the host should take.
type DialogActionType string

const (
	DialogActionClose      DialogActionType = "Close"
	DialogActionElicitSlot DialogActionType = "ElicitSlot"
)

const (
	FulfillmentStateFulfilled = "Fulfilled"
	ContentTypePlainText      = "PlainText"
	ResponseCardContentType   = "application/vnd.amazonaws.card.generic"
	ResponseCardVersion       = 1
)

// Message is the text shown or spoken to the user.
type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Button is a quick-reply choice on a response card.
type Button struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// Attachment is one card in a response card.
type Attachment struct {
	Title             string   `json:"title,omitempty"`
	SubTitle          string   `json:"subTitle,omitempty"`
	ImageURL          string   `json:"imageUrl,omitempty"`
	AttachmentLinkURL string   `json:"attachmentLinkUrl,omitempty"`
	Buttons           []Button `json:"buttons,omitempty"`
}

// ResponseCard holds the ordered attachments of a reply.
type ResponseCard struct {
	Version            int          `json:"version"`
	ContentType        string       `json:"contentType"`
	GenericAttachments []Attachment `json:"genericAttachments"`
}

// DialogAction is either a close or an elicit-slot instruction.
type DialogAction struct {
	Type             DialogActionType `json:"type"`
	FulfillmentState string           `json:"fulfillmentState,omitempty"`
	IntentName       string           `json:"intentName,omitempty"`
	Slots            Slots            `json:"slots,omitempty"`
	SlotToElicit     string           `json:"slotToElicit,omitempty"`
	Message          *Message         `json:"message,omitempty"`
	ResponseCard     *ResponseCard    `json:"responseCard,omitempty"`
}

// LexResponse is the outbound payload for one turn.
type LexResponse struct {
	SessionAttributes SessionAttributes `json:"sessionAttributes"`
	DialogAction      DialogAction      `json:"dialogAction"`
}

// NewResponseCard wraps attachments in a generic response card.
func NewResponseCard(attachments []Attachment) *ResponseCard {
	return &ResponseCard{
		Version:            ResponseCardVersion,
		ContentType:        ResponseCardContentType,
		GenericAttachments: attachments,
	}
}

// Close builds a fulfilled close action. card may be nil.
func Close(session SessionAttributes, content string, card *ResponseCard) LexResponse {
	if session == nil {
		session = SessionAttributes{}
	}
	return LexResponse{
		SessionAttributes: session,
		DialogAction: DialogAction{
			Type:             DialogActionClose,
			FulfillmentState: FulfillmentStateFulfilled,
			Message:          &Message{ContentType: ContentTypePlainText, Content: content},
			ResponseCard:     card,
		},
	}
}

// ElicitSlot builds an action asking the user for slot on intent.
func ElicitSlot(session SessionAttributes, intent string, slots Slots, slot string, content string, card *ResponseCard) LexResponse {
	if session == nil {
		session = SessionAttributes{}
	}
	return LexResponse{
		SessionAttributes: session,
		DialogAction: DialogAction{
			Type:         DialogActionElicitSlot,
			IntentName:   intent,
			Slots:        slots,
			SlotToElicit: slot,
			Message:      &Message{ContentType: ContentTypePlainText, Content: content},
			ResponseCard: card,
		},
	}
}
