package domain

// Script identifies the writing system a composition was detected in.
type Script string

const (
	ScriptDevanagari Script = "DEVANAGARI"
	ScriptRomanized  Script = "ROMANIZED"
	ScriptMixed      Script = "MIXED"
	ScriptUnknown    Script = "UNKNOWN"
)

func (s Script) String() string { return string(s) }

func (s Script) IsValid() bool {
	switch s {
	case ScriptDevanagari, ScriptRomanized, ScriptMixed, ScriptUnknown:
		return true
	}
	return false
}

// UsesRomanLabels reports whether foot names, messages and titles for this
// script are shown in Roman transliteration. Only a purely Romanized
// composition gets Roman labels; everything else is labelled in Devanagari.
func (s Script) UsesRomanLabels() bool {
	return s == ScriptRomanized
}

// RuleSet selects which syllabification and weighting rules apply to a
// composition detected in this script. Mixed and Unknown compositions fall
// back to the Romanized rules, which re-route Devanagari words internally.
func (s Script) RuleSet() Script {
	if s == ScriptDevanagari {
		return ScriptDevanagari
	}
	return ScriptRomanized
}

// Weight is the prosodic weight of a syllable: Light = 1, Heavy = 2.
type Weight int

const (
	WeightLight Weight = 1
	WeightHeavy Weight = 2
)

func (w Weight) IsValid() bool {
	return w == WeightLight || w == WeightHeavy
}

// Digit returns the weight as it appears in signatures: "1" or "2".
func (w Weight) Digit() byte {
	if w == WeightHeavy {
		return '2'
	}
	return '1'
}

// ErrorKind classifies how a line deviates from the dominant pattern.
type ErrorKind string

const (
	ErrorKindNone            ErrorKind = "NONE"
	ErrorKindTooShort        ErrorKind = "TOO_SHORT"
	ErrorKindTooLong         ErrorKind = "TOO_LONG"
	ErrorKindPatternMismatch ErrorKind = "PATTERN_MISMATCH"
)

func (k ErrorKind) String() string { return string(k) }

func (k ErrorKind) IsValid() bool {
	switch k {
	case ErrorKindNone, ErrorKindTooShort, ErrorKindTooLong, ErrorKindPatternMismatch:
		return true
	}
	return false
}

// SegmentationMode selects the foot segmenter used for a composition.
type SegmentationMode string

const (
	// SegmentationGreedy matches against the whole foot library, longest first.
	SegmentationGreedy SegmentationMode = "greedy"
	// SegmentationFixed imposes the canonical 1212 1122 1212 22 layout.
	SegmentationFixed SegmentationMode = "fixed"
)

func (m SegmentationMode) String() string { return string(m) }

func (m SegmentationMode) IsValid() bool {
	switch m {
	case SegmentationGreedy, SegmentationFixed:
		return true
	}
	return false
}
