// Package foot holds the fixed library of named metrical feet and the
// segmenters that group weighted syllables into feet.
package foot

import (
	"github.com/heartmarshall/bahr-checker/internal/domain"
)

const (
	l = domain.WeightLight
	h = domain.WeightHeavy
)

// Presentation tags. Validation never looks at them.
const (
	TagBlue   = "blue"
	TagPink   = "pink"
	TagGray   = "gray"
	TagGreen  = "green"
	TagPurple = "purple"
	TagYellow = "yellow"
	TagRed    = "red"
)

// Library keys.
const (
	KeyMufailun    = "mufailun"
	KeyFailatun    = "failatun"
	KeyFelun       = "felun"
	KeyFailun      = "failun"
	KeyFe          = "fe"
	KeyMustafailun = "mustafailun"
)

const (
	errorName      = "त्रुटि"
	errorNameRoman = "error"
)

// Entry is one named foot of the library.
type Entry struct {
	Key       string          `json:"key"`
	Pattern   []domain.Weight `json:"pattern"`
	Name      string          `json:"name"`
	NameRoman string          `json:"nameRoman"`
	Tag       string          `json:"tag"`
}

// DisplayName returns the name for compositions in script s.
func (e Entry) DisplayName(s domain.Script) string {
	if s.UsesRomanLabels() {
		return e.NameRoman
	}
	return e.Name
}

// Signature returns the pattern as digits, e.g. "1212".
func (e Entry) Signature() string {
	return domain.WeightsString(e.Pattern)
}

func (e Entry) matches(syls []domain.Syllable) bool {
	if len(syls) < len(e.Pattern) {
		return false
	}
	for i, w := range e.Pattern {
		if syls[i].Weight != w {
			return false
		}
	}
	return true
}

func (e Entry) build(syls []domain.Syllable, s domain.Script) domain.Foot {
	return domain.NewFoot(e.Key, e.DisplayName(s), e.Tag, syls)
}

// Declaration order matters: among equally long matches the first wins.
var library = []Entry{
	{Key: KeyMufailun, Pattern: []domain.Weight{l, h, l, h}, Name: "मुफ़ाइलुन", NameRoman: "mafa'ilun", Tag: TagBlue},
	{Key: KeyFailatun, Pattern: []domain.Weight{l, l, h, h}, Name: "फ़इलातुन", NameRoman: "fai'latun", Tag: TagPink},
	{Key: KeyFelun, Pattern: []domain.Weight{h, h}, Name: "फ़ेलुन", NameRoman: "fe'lun", Tag: TagGray},
	{Key: KeyFailun, Pattern: []domain.Weight{h, l, h}, Name: "फ़ाइलुन", NameRoman: "fa'ilun", Tag: TagGreen},
	{Key: KeyFe, Pattern: []domain.Weight{h}, Name: "फे़", NameRoman: "fe'", Tag: TagPurple},
	{Key: KeyMustafailun, Pattern: []domain.Weight{h, l, h, l, h}, Name: "मुस्तफ़ाइलुन", NameRoman: "mustafa'ilun", Tag: TagYellow},
}

var byKey = func() map[string]Entry {
	m := make(map[string]Entry, len(library))
	for _, e := range library {
		m[e.Key] = e
	}
	return m
}()

// Library returns a copy of the foot library in declaration order.
func Library() []Entry {
	out := make([]Entry, len(library))
	for i, e := range library {
		p := make([]domain.Weight, len(e.Pattern))
		copy(p, e.Pattern)
		e.Pattern = p
		out[i] = e
	}
	return out
}

// ErrorName is the display name given to a foot that holds error syllables.
func ErrorName(s domain.Script) string {
	if s.UsesRomanLabels() {
		return errorNameRoman
	}
	return errorName
}

// MarkError builds an error foot over syls: error name, red tag, no library key.
// Cells and the error flag are derived again from the given syllables.
func MarkError(syls []domain.Syllable, s domain.Script) domain.Foot {
	return domain.NewFoot("", ErrorName(s), TagRed, syls)
}
