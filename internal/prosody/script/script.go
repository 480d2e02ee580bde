// Package script classifies text by writing system and decides whether a
// line only contains characters allowed by a script's rule set.
package script

import (
	"strings"

	"github.com/heartmarshall/bahr-checker/internal/domain"
)

// Devanagari block boundaries and the code points the syllabifier cares about.
const (
	DevanagariFirst rune = 0x0900
	DevanagariLast  rune = 0x097F

	Candrabindu rune = 0x0901
	Anusvara    rune = 0x0902
	Visarga     rune = 0x0903
	Nukta       rune = 0x093C
	Halant      rune = 0x094D // virama

	danda       rune = 0x0964
	doubleDanda rune = 0x0965
	abbrevSign  rune = 0x0970
)

// IsDevanagari reports whether r lies in the Devanagari Unicode block.
func IsDevanagari(r rune) bool {
	return r >= DevanagariFirst && r <= DevanagariLast
}

// IsDevanagariDigit reports whether r is one of ० .. ९.
func IsDevanagariDigit(r rune) bool {
	return r >= 0x0966 && r <= 0x096F
}

// IsDevanagariLetter reports whether r is a Devanagari letter or combining
// sign, i.e. in the block but neither a digit nor punctuation (danda etc.).
func IsDevanagariLetter(r rune) bool {
	if !IsDevanagari(r) || IsDevanagariDigit(r) {
		return false
	}
	switch r {
	case danda, doubleDanda, abbrevSign:
		return false
	}
	return true
}

// IsConsonant reports whether r is a Devanagari consonant, including the
// precomposed nukta forms (क़ ख़ ग़ ज़ ड़ ढ़ फ़ य़) and the extended consonants.
func IsConsonant(r rune) bool {
	return (r >= 0x0915 && r <= 0x0939) ||
		(r >= 0x0958 && r <= 0x095F) ||
		(r >= 0x0978 && r <= 0x097F)
}

// IsDependentSign reports whether r attaches to the preceding letter:
// vowel signs (matras), nasalisation marks, nukta and accents.
// The halant is deliberately excluded; it is handled as a conjunct joiner.
func IsDependentSign(r rune) bool {
	switch {
	case r >= Candrabindu && r <= Visarga:
		return true
	case r >= 0x093A && r <= Nukta:
		return true
	case r >= 0x093E && r <= 0x094C:
		return true
	case r == 0x094E || r == 0x094F:
		return true
	case r >= 0x0951 && r <= 0x0957:
		return true
	case r == 0x0962 || r == 0x0963:
		return true
	}
	return false
}

// IsLatinLetter reports whether r is an ASCII letter.
func IsLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsDigit reports whether r is a Western or Devanagari numeral.
func IsDigit(r rune) bool {
	return (r >= '0' && r <= '9') || IsDevanagariDigit(r)
}

// Detect classifies text by the scripts present in its sample: the first
// non-blank line, or the whole text when there is none. Lines after the
// first never change the outcome.
func Detect(text string) domain.Script {
	sample := sampleOf(text)

	hasDevanagari, hasLatin := false, false
	for _, r := range sample {
		switch {
		case IsDevanagari(r):
			hasDevanagari = true
		case IsLatinLetter(r):
			hasLatin = true
		}
		if hasDevanagari && hasLatin {
			return domain.ScriptMixed
		}
	}

	switch {
	case hasDevanagari:
		return domain.ScriptDevanagari
	case hasLatin:
		return domain.ScriptRomanized
	default:
		return domain.ScriptUnknown
	}
}

func sampleOf(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return text
}

// IsLineLegal reports whether line only holds characters allowed by the
// rule set of s. Under Devanagari rules any Latin letter or digit is
// illegal; under Romanized rules (also used for Mixed and Unknown) any
// digit is illegal, in either numeral form.
func IsLineLegal(line string, s domain.Script) bool {
	devanagariRules := s.RuleSet() == domain.ScriptDevanagari
	for _, r := range line {
		if IsDigit(r) {
			return false
		}
		if devanagariRules && IsLatinLetter(r) {
			return false
		}
	}
	return true
}
