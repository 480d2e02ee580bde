// Package meter infers a composition's dominant pattern from its opening
// lines, validates every line against it and marks where a deviating line
// breaks the meter.
package meter

import (
	"math"

	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/internal/prosody/foot"
)

const (
	// SampleSize is how many opening lines the dominant pattern is inferred from.
	SampleSize = 3

	// ShortLineErrorFraction: a too-short line is marked from foot
	// floor(0.6 * feet) onward.
	ShortLineErrorFraction = 0.6

	// PatternMismatchErrorFraction: a mismatching line is marked from foot
	// floor(0.5 * feet) onward.
	PatternMismatchErrorFraction = 0.5
)

type signature struct {
	count   int
	weights string
}

func signatureOf(l domain.LineAnalysis) signature {
	return signature{count: len(l.Syllables), weights: l.WeightSignature()}
}

// Infer picks the most frequent signature among the first SampleSize lines.
// Ties go to the signature seen first. Invalid lines and lines without feet
// are skipped. It returns nil when nothing can be inferred.
func Infer(lines []domain.LineAnalysis) *domain.DominantPattern {
	n := min(SampleSize, len(lines))

	var order []signature
	counts := make(map[signature]int, n)
	for _, l := range lines[:n] {
		if l.IsInvalid || len(l.Feet) == 0 {
			continue
		}
		sig := signatureOf(l)
		if _, seen := counts[sig]; !seen {
			order = append(order, sig)
		}
		counts[sig]++
	}
	if len(order) == 0 {
		return nil
	}

	best := order[0]
	for _, sig := range order[1:] {
		if counts[sig] > counts[best] {
			best = sig
		}
	}

	return &domain.DominantPattern{SyllableCount: best.count, WeightSignature: best.weights}
}

// Check classifies how line deviates from dominant. Count checks run before
// the weight comparison. A nil dominant pattern means nothing to violate.
func Check(line domain.LineAnalysis, dominant *domain.DominantPattern) domain.ErrorKind {
	if dominant == nil || line.IsInvalid {
		return domain.ErrorKindNone
	}

	count := len(line.Syllables)
	switch {
	case count < dominant.SyllableCount:
		return domain.ErrorKindTooShort
	case count > dominant.SyllableCount:
		return domain.ErrorKindTooLong
	case line.WeightSignature() != dominant.WeightSignature:
		return domain.ErrorKindPatternMismatch
	}
	return domain.ErrorKindNone
}

// Annotate returns a copy of line marked for kind. The input is not modified.
// Error feet take the error name of script s; their cells render as "x".
func Annotate(line domain.LineAnalysis, kind domain.ErrorKind, dominant *domain.DominantPattern, s domain.Script) domain.LineAnalysis {
	out := line
	out.ErrorKind = kind
	if kind == domain.ErrorKindNone {
		return out
	}
	out.HasMeterError = true

	var isErr func(footIdx, sylIdx int) bool
	switch kind {
	case domain.ErrorKindTooShort:
		cut := errorFrom(len(line.Feet), ShortLineErrorFraction)
		isErr = func(footIdx, _ int) bool { return footIdx >= cut }
	case domain.ErrorKindPatternMismatch:
		cut := errorFrom(len(line.Feet), PatternMismatchErrorFraction)
		isErr = func(footIdx, _ int) bool { return footIdx >= cut }
	case domain.ErrorKindTooLong:
		cut := len(line.Syllables)
		if dominant != nil {
			cut = dominant.SyllableCount
		}
		isErr = func(_, sylIdx int) bool { return sylIdx >= cut }
	default:
		return out
	}

	feet := make([]domain.Foot, len(line.Feet))
	syls := make([]domain.Syllable, 0, len(line.Syllables))
	pos := 0
	for fi, f := range line.Feet {
		marked := make([]domain.Syllable, len(f.Syllables))
		hasErr := false
		for si, syl := range f.Syllables {
			syl.IsError = isErr(fi, pos)
			hasErr = hasErr || syl.IsError
			marked[si] = syl
			pos++
		}
		syls = append(syls, marked...)

		if hasErr {
			feet[fi] = foot.MarkError(marked, s)
		} else {
			feet[fi] = domain.NewFoot(f.Key, f.Name, f.Tag, marked)
		}
	}

	out.Feet = feet
	out.Syllables = syls
	return out
}

func errorFrom(feet int, fraction float64) int {
	return int(math.Floor(fraction * float64(feet)))
}

// Validate infers the dominant pattern from lines and returns annotated
// copies of every line together with that pattern. The pattern is fixed
// before the first line is checked.
func Validate(lines []domain.LineAnalysis, s domain.Script) ([]domain.LineAnalysis, *domain.DominantPattern) {
	dominant := Infer(lines)

	out := make([]domain.LineAnalysis, len(lines))
	for i, l := range lines {
		out[i] = Annotate(l, Check(l, dominant), dominant, s)
	}
	return out, dominant
}
