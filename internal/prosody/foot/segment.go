package foot

import (
	"strings"

	"github.com/heartmarshall/bahr-checker/internal/domain"
)

// Segment partitions syls into feet, left to right. At each position the
// longest library entry whose pattern matches the upcoming weights wins;
// when nothing matches, the next two syllables (or the last one) form a
// residual foot named after fe'lun (or fe'). Every syllable lands in exactly
// one foot, in order.
func Segment(syls []domain.Syllable, s domain.Script) []domain.Foot {
	feet := []domain.Foot{}
	for i := 0; i < len(syls); {
		rest := syls[i:]

		if e, ok := longestMatch(rest); ok {
			n := len(e.Pattern)
			feet = append(feet, e.build(rest[:n], s))
			i += n
			continue
		}

		fallback, n := byKey[KeyFelun], 2
		if len(rest) < 2 {
			fallback, n = byKey[KeyFe], 1
		}
		feet = append(feet, fallback.build(rest[:n], s))
		i += n
	}
	return feet
}

func longestMatch(syls []domain.Syllable) (Entry, bool) {
	var best Entry
	found := false
	for _, e := range library {
		if !e.matches(syls) {
			continue
		}
		if !found || len(e.Pattern) > len(best.Pattern) {
			best, found = e, true
		}
	}
	return best, found
}

// fixedLayout is the canonical four-foot layout 1212 1122 1212 22.
var fixedLayout = []string{KeyMufailun, KeyFailatun, KeyMufailun, KeyFelun}

// SegmentFixed lays syls over the fixed layout. A light slot takes one
// syllable. A heavy slot takes two adjacent syllables joined into one heavy
// unit, or the last remaining syllable as a light unit. Syllables left over
// after the last slot are segmented with Segment into trailing feet.
//
// It returns the units (the line's syllables under this layout) and the feet.
func SegmentFixed(syls []domain.Syllable, s domain.Script) ([]domain.Syllable, []domain.Foot) {
	units := []domain.Syllable{}
	feet := []domain.Foot{}

	i := 0
	for _, key := range fixedLayout {
		if i >= len(syls) {
			break
		}
		e := byKey[key]

		var footUnits []domain.Syllable
		for _, slot := range e.Pattern {
			if i >= len(syls) {
				break
			}
			switch {
			case slot == domain.WeightHeavy && i+1 < len(syls):
				footUnits = append(footUnits, domain.Syllable{
					Text:   syls[i].Text + syls[i+1].Text,
					Weight: domain.WeightHeavy,
				})
				i += 2
			default:
				footUnits = append(footUnits, domain.Syllable{
					Text:   syls[i].Text,
					Weight: domain.WeightLight,
				})
				i++
			}
		}

		units = append(units, footUnits...)
		feet = append(feet, e.build(footUnits, s))
	}

	if i < len(syls) {
		rest := syls[i:]
		units = append(units, rest...)
		feet = append(feet, Segment(rest, s)...)
	}

	return units, feet
}

// Meter description titles.
const (
	meterTitle      = "आप की रचना निम्नलिखित बहर में है:"
	meterTitleRoman = "Your composition follows this meter:"
)

// Describe summarises the meter of line: its foot names and per-foot
// weight groups, titled for script s.
func Describe(line domain.LineAnalysis, s domain.Script) domain.MeterDescription {
	names := make([]string, len(line.Feet))
	for i, f := range line.Feet {
		names[i] = f.Name
	}
	groups := line.FootGroups()

	title := meterTitle
	if s.UsesRomanLabels() {
		title = meterTitleRoman
	}

	return domain.MeterDescription{
		Title:         title,
		PatternString: strings.Join(names, " "),
		WeightPattern: strings.Join(groups, " "),
		FootNames:     names,
		FootGroups:    groups,
	}
}
