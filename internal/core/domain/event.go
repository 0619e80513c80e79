package domain

// InvocationSource tells a handler which pass of the dialog it is serving.
type InvocationSource string

const (
	// DialogCodeHook is the dialog-validation pass.
	DialogCodeHook InvocationSource = "DialogCodeHook"
	// FulfillmentCodeHook is the fulfillment pass.
	FulfillmentCodeHook InvocationSource = "FulfillmentCodeHook"
)

// Slot names understood by the handlers.
const (
	SlotLyric  = "lyric"
	SlotSongID = "songId"
)

// Intent names routed by the dispatcher.
const (
	IntentGetLyricData   = "GetLyricData"
	IntentWrongLyricData = "WrongLyricData"
)

// Slots maps slot names to values. A nil value means the slot has not been
// provided; it is never represented as an empty string.
type Slots map[string]*string

// Get returns the slot value and whether it is present.
func (s Slots) Get(name string) (string, bool) {
	v, ok := s[name]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// SessionAttributes is the opaque key-value bag the host persists across turns.
type SessionAttributes map[string]string

// Intent is the intent the host resolved for the current turn.
type Intent struct {
	Name               string `json:"name"`
	Slots              Slots  `json:"slots"`
	ConfirmationStatus string `json:"confirmationStatus,omitempty"`
}

// LexEvent is the inbound request the host sends for one turn.
type LexEvent struct {
	MessageVersion    string            `json:"messageVersion,omitempty"`
	InvocationSource  InvocationSource  `json:"invocationSource"`
	UserID            string            `json:"userId,omitempty"`
	InputTranscript   string            `json:"inputTranscript,omitempty"`
	OutputDialogMode  string            `json:"outputDialogMode,omitempty"`
	CurrentIntent     Intent            `json:"currentIntent"`
	SessionAttributes SessionAttributes `json:"sessionAttributes"`
}

// StringPtr returns a pointer to s, for building slot maps.
func StringPtr(s string) *string {
	return &s
}
