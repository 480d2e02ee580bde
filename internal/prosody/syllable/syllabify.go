// Package syllable splits cleaned lines into prosodic syllables and
// classifies each syllable as light or heavy. Both operations dispatch on the
// composition's rule set (Devanagari or Romanized).
package syllable

import (
	"strings"
	"unicode"

	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/internal/prosody/script"
)

// MaxSyllablesPerWord bounds the Romanized scanner on malformed input.
const MaxSyllablesPerWord = 20

const (
	romanVowels     = "aeiou"
	romanConsonants = "bcdfghjklmnpqrstvwxyz"
	implicitVowel   = "a"
)

// Split returns the ordered syllable strings of line under the rule set of s.
// It never fails; a line without usable letters yields an empty slice.
func Split(line string, s domain.Script) []string {
	switch s.RuleSet() {
	case domain.ScriptDevanagari:
		return SplitDevanagari(line)
	default:
		return SplitRomanized(line)
	}
}

// Syllabify splits line and weighs every syllable.
func Syllabify(line string, s domain.Script) []domain.Syllable {
	texts := Split(line, s)
	out := make([]domain.Syllable, len(texts))
	for i, t := range texts {
		out[i] = domain.Syllable{Text: t, Weight: Classify(t, s)}
	}
	return out
}

// SplitDevanagari produces akshara units: an independent letter, its
// dependent signs, and any consonants joined to it through a halant.
// Everything outside Devanagari letters and whitespace is stripped first.
func SplitDevanagari(text string) []string {
	rs := make([]rune, 0, len(text))
	for _, r := range text {
		if script.IsDevanagariLetter(r) || unicode.IsSpace(r) {
			rs = append(rs, r)
		}
	}
	return scanAksharas(rs)
}

func scanAksharas(rs []rune) []string {
	out := []string{}
	for i := 0; i < len(rs); {
		if !script.IsDevanagariLetter(rs[i]) {
			i++
			continue
		}

		start := i
		i = consumeSigns(rs, i+1)

		// Conjuncts: halant + consonant (+ its signs), repeatedly.
		for i < len(rs) && rs[i] == script.Halant {
			i++
			if i < len(rs) && script.IsConsonant(rs[i]) {
				i = consumeSigns(rs, i+1)
			}
		}

		out = append(out, string(rs[start:i]))
	}
	return out
}

func consumeSigns(rs []rune, i int) int {
	for i < len(rs) && script.IsDependentSign(rs[i]) {
		i++
	}
	return i
}

// SplitRomanized lowercases the text, strips everything except Devanagari
// letters, ASCII letters and whitespace, and splits word by word. Words that
// contain Devanagari letters are handed to the Devanagari scanner.
func SplitRomanized(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || script.IsDevanagariLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	out := []string{}
	for _, word := range strings.Fields(b.String()) {
		out = append(out, splitRomanWord(word)...)
	}
	return out
}

func splitRomanWord(word string) []string {
	if containsDevanagari(word) {
		return scanAksharas([]rune(word))
	}

	var syls []string
	for i := 0; i < len(word) && len(syls) < MaxSyllablesPerWord; {
		start := i
		for i < len(word) && strings.IndexByte(romanConsonants, word[i]) >= 0 {
			i++
		}
		hasVowel := false
		for i < len(word) && strings.IndexByte(romanVowels, word[i]) >= 0 {
			i++
			hasVowel = true
		}
		if i == start {
			i++
			continue
		}

		syl := word[start:i]
		if !hasVowel {
			syl += implicitVowel
		}
		syls = append(syls, syl)
	}

	if len(syls) == 0 {
		return []string{word}
	}
	return syls
}

func containsDevanagari(s string) bool {
	for _, r := range s {
		if script.IsDevanagari(r) {
			return true
		}
	}
	return false
}
