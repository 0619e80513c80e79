package domain

import "encoding/json"

// SessionKeyAlternates is the session attribute holding the ranked
// alternates of the last ambiguous lookup.
const SessionKeyAlternates = "currentAlternates"

// MaxAlternates caps how many alternates are carried to the next turn.
const MaxAlternates = 10

// Alternate is a candidate song persisted for the disambiguation turn.
type Alternate struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	ImageURL string `json:"imageUrl"`
	URL      string `json:"url"`
}

// EncodeAlternates serializes alternates for the session bag.
func EncodeAlternates(alts []Alternate) (string, error) {
	if alts == nil {
		alts = []Alternate{}
	}
	b, err := json.Marshal(alts)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeAlternates reads alternates from the session bag. A missing or
// unparseable value yields an empty list.
func DecodeAlternates(session SessionAttributes) []Alternate {
	raw, ok := session[SessionKeyAlternates]
	if !ok || raw == "" {
		return []Alternate{}
	}
	var alts []Alternate
	if err := json.Unmarshal([]byte(raw), &alts); err != nil {
		return []Alternate{}
	}
	if alts == nil {
		return []Alternate{}
	}
	return alts
}
