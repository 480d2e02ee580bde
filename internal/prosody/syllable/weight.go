package syllable

import (
	"strings"

	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/internal/prosody/script"
)

var (
	// Long-vowel and diphthong spellings in Roman transliteration.
	romanLongVowels = []string{"aa", "ee", "ii", "oo", "uu", "ai", "au", "aw", "ay", "ey", "oy"}

	// Aspirated stops, nasal clusters and sibilant clusters.
	romanClusters = []string{
		"ch", "sh", "th", "kh", "gh", "ph", "bh", "dh", "jh",
		"ng", "nk", "nt", "nd",
		"st", "sp",
	}
)

// Classify returns the weight of one syllable under the rule set of s.
// Within the Romanized rule set a syllable holding Devanagari letters is
// weighed by the Devanagari rules.
func Classify(syl string, s domain.Script) domain.Weight {
	switch s.RuleSet() {
	case domain.ScriptDevanagari:
		return devanagariWeight(syl)
	default:
		if containsDevanagari(syl) {
			return devanagariWeight(syl)
		}
		return romanWeight(syl)
	}
}

// devanagariWeight: heavy on a long vowel (independent or matra), a
// diphthong, a conjunct (halant), anusvara or visarga.
func devanagariWeight(syl string) domain.Weight {
	for _, r := range syl {
		if isLongDevanagariVowel(r) || r == script.Halant || r == script.Anusvara || r == script.Visarga {
			return domain.WeightHeavy
		}
	}
	return domain.WeightLight
}

func isLongDevanagariVowel(r rune) bool {
	switch {
	case r == 0x0906 || r == 0x0908 || r == 0x090A: // आ ई ऊ
		return true
	case r >= 0x090F && r <= 0x0914: // ए ऐ ऑ ऒ ओ औ
		return true
	case r == 0x093E || r == 0x0940 || r == 0x0942: // ा ी ू
		return true
	case r >= 0x0947 && r <= 0x094C: // े ै ॉ ॊ ो ौ
		return true
	}
	return false
}

// romanWeight: heavy on a long-vowel spelling, more than two consonant
// letters, or a recognised consonant-cluster digraph.
func romanWeight(syl string) domain.Weight {
	syl = strings.ToLower(syl)

	for _, v := range romanLongVowels {
		if strings.Contains(syl, v) {
			return domain.WeightHeavy
		}
	}

	consonants := 0
	for i := 0; i < len(syl); i++ {
		if strings.IndexByte(romanConsonants, syl[i]) >= 0 {
			consonants++
		}
	}
	if consonants > 2 {
		return domain.WeightHeavy
	}

	for _, c := range romanClusters {
		if strings.Contains(syl, c) {
			return domain.WeightHeavy
		}
	}

	return domain.WeightLight
}
