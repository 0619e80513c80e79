package domain

// PitchClass is a key in standard pitch-class notation, 0 (C) through 11 (B).
type PitchClass int

var pitchClassNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Valid reports whether p is a real pitch class. Providers use -1 for
// "no key detected".
func (p PitchClass) Valid() bool {
	return p >= 0 && p < 12
}

// String returns the letter name, or "" for an invalid pitch class.
func (p PitchClass) String() string {
	if !p.Valid() {
		return ""
	}
	return pitchClassNames[p]
}

// Mode is the modality of a track.
type Mode int

const (
	Minor Mode = 0
	Major Mode = 1
)

// Valid reports whether m is Major or Minor.
func (m Mode) Valid() bool {
	return m == Major || m == Minor
}

func (m Mode) String() string {
	switch m {
	case Major:
		return "Major"
	case Minor:
		return "Minor"
	default:
		return ""
	}
}
