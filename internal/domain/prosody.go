package domain

import "strings"

// ErrorCell is the weight cell rendered in place of a digit for error syllables.
const ErrorCell = "x"

// Syllable is one prosodic unit of a line.
// Values are never mutated in place; annotation produces copies.
type Syllable struct {
	Text    string `json:"text"`
	Weight  Weight `json:"weight"`
	IsError bool   `json:"isError"`
}

// Cell returns the weight cell for a grid renderer: "1", "2", or "x" for errors.
func (s Syllable) Cell() string {
	if s.IsError {
		return ErrorCell
	}
	return string(s.Weight.Digit())
}

// Foot is a named group of consecutive syllables.
type Foot struct {
	// Key is the library key ("mufailun", ...). Empty for error feet.
	Key       string     `json:"key,omitempty"`
	Name      string     `json:"name"`
	Tag       string     `json:"tag"`
	Syllables []Syllable `json:"syllables"`
	Signature []Weight   `json:"weightSignature"`
	Cells     []string   `json:"cells"`
	IsError   bool       `json:"isError"`
}

// NewFoot builds a foot from syllables, deriving signature, cells and the
// error flag from the syllables themselves.
func NewFoot(key, name, tag string, syllables []Syllable) Foot {
	syls := make([]Syllable, len(syllables))
	copy(syls, syllables)

	sig := make([]Weight, len(syls))
	cells := make([]string, len(syls))
	isError := false
	for i, s := range syls {
		sig[i] = s.Weight
		cells[i] = s.Cell()
		if s.IsError {
			isError = true
		}
	}

	return Foot{
		Key:       key,
		Name:      name,
		Tag:       tag,
		Syllables: syls,
		Signature: sig,
		Cells:     cells,
		IsError:   isError,
	}
}

// WeightString returns the foot's weights as digits, e.g. "1212".
func (f Foot) WeightString() string {
	return WeightsString(f.Signature)
}

// Texts returns the syllable texts in order.
func (f Foot) Texts() []string {
	out := make([]string, len(f.Syllables))
	for i, s := range f.Syllables {
		out[i] = s.Text
	}
	return out
}

// LineAnalysis is the result for one non-blank input line.
type LineAnalysis struct {
	RawLine        string     `json:"line"`
	IsInvalid      bool       `json:"isInvalid"`
	Feet           []Foot     `json:"feet"`
	Syllables      []Syllable `json:"syllables"`
	HasMeterError  bool       `json:"hasMeterError"`
	ErrorKind      ErrorKind  `json:"errorKind"`
	TotalSyllables int        `json:"totalSyllables"`
	TotalWeight    int        `json:"totalWeight"`
}

// NewInvalidLine returns the analysis of a line rejected for illegal characters.
func NewInvalidLine(raw string) LineAnalysis {
	return LineAnalysis{
		RawLine:   raw,
		IsInvalid: true,
		Feet:      []Foot{},
		Syllables: []Syllable{},
		ErrorKind: ErrorKindNone,
	}
}

// NewLine returns a clean analysis of a legal line.
func NewLine(raw string, syllables []Syllable, feet []Foot) LineAnalysis {
	total := 0
	for _, s := range syllables {
		total += int(s.Weight)
	}
	return LineAnalysis{
		RawLine:        raw,
		Feet:           feet,
		Syllables:      syllables,
		ErrorKind:      ErrorKindNone,
		TotalSyllables: len(syllables),
		TotalWeight:    total,
	}
}

// WeightSignature concatenates the weight strings of all feet.
func (l LineAnalysis) WeightSignature() string {
	var b strings.Builder
	for _, f := range l.Feet {
		b.WriteString(f.WeightString())
	}
	return b.String()
}

// FootGroups returns the per-foot weight strings, e.g. ["1212", "1122", "1212", "22"].
func (l LineAnalysis) FootGroups() []string {
	out := make([]string, len(l.Feet))
	for i, f := range l.Feet {
		out[i] = f.WeightString()
	}
	return out
}

// DominantPattern is the meter signature inferred from the opening lines.
type DominantPattern struct {
	SyllableCount   int    `json:"syllableCount"`
	WeightSignature string `json:"weightSignature"`
}

// MeterDescription summarises the meter of an error-free composition.
type MeterDescription struct {
	Title         string   `json:"title"`
	PatternString string   `json:"patternString"`
	WeightPattern string   `json:"weightPattern"`
	FootNames     []string `json:"footNames"`
	FootGroups    []string `json:"footGroups"`
	Bahr          *Bahr    `json:"bahr,omitempty"`
}

// CompositionResult is the top-level output of one analysis.
type CompositionResult struct {
	Language  Script            `json:"language"`
	Mode      SegmentationMode  `json:"mode"`
	Lines     []LineAnalysis    `json:"lines"`
	HasErrors bool              `json:"hasErrors"`
	Message   string            `json:"message"`
	Dominant  *DominantPattern  `json:"dominantPattern,omitempty"`
	Meter     *MeterDescription `json:"meter,omitempty"`
}

// InvalidLineCount returns the number of lines rejected for illegal characters.
func (r CompositionResult) InvalidLineCount() int {
	n := 0
	for _, l := range r.Lines {
		if l.IsInvalid {
			n++
		}
	}
	return n
}

// ErrorLineCount returns the number of lines flagged with a meter error.
func (r CompositionResult) ErrorLineCount() int {
	n := 0
	for _, l := range r.Lines {
		if l.HasMeterError {
			n++
		}
	}
	return n
}

// WeightsString renders weights as a digit string.
func WeightsString(ws []Weight) string {
	b := make([]byte, len(ws))
	for i, w := range ws {
		b[i] = w.Digit()
	}
	return string(b)
}
