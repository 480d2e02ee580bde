// Package prosody runs the bahr analysis pipeline: script detection, line
// legality, syllabification, weighting, foot segmentation and meter
// validation. Analyze is pure; identical input yields an identical result.
package prosody

import (
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/internal/prosody/foot"
	"github.com/heartmarshall/bahr-checker/internal/prosody/meter"
	"github.com/heartmarshall/bahr-checker/internal/prosody/script"
	"github.com/heartmarshall/bahr-checker/internal/prosody/syllable"
)

type options struct {
	mode    domain.SegmentationMode
	workers int
}

// Option configures one Analyze call.
type Option func(*options)

// WithMode selects the foot segmenter. Unknown modes fall back to greedy.
func WithMode(m domain.SegmentationMode) Option {
	return func(o *options) {
		if m.IsValid() {
			o.mode = m
		}
	}
}

// WithWorkers runs the per-line stage on up to n goroutines. Values below 2
// keep it sequential. Line order is preserved either way.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// DetectScript classifies text by writing system.
func DetectScript(text string) domain.Script {
	return script.Detect(text)
}

// IsLineLegal reports whether line only holds characters allowed for s.
func IsLineLegal(line string, s domain.Script) bool {
	return script.IsLineLegal(line, s)
}

// Analyze checks every non-blank line of text against the composition's
// dominant meter. It never fails: illegal characters and meter violations
// are reported on the lines themselves. Legal lines that yield no syllables
// produce no entry.
func Analyze(text string, opts ...Option) domain.CompositionResult {
	o := options{mode: domain.SegmentationGreedy, workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	lang := script.Detect(text)
	raw := domain.SplitLines(text)

	built := make([]lineResult, len(raw))
	if o.workers > 1 && len(raw) > 1 {
		var g errgroup.Group
		g.SetLimit(o.workers)
		for i, line := range raw {
			g.Go(func() error {
				built[i] = analyzeLine(line, lang, o.mode)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, line := range raw {
			built[i] = analyzeLine(line, lang, o.mode)
		}
	}

	lines := make([]domain.LineAnalysis, 0, len(built))
	for _, b := range built {
		if b.ok {
			lines = append(lines, b.line)
		}
	}

	lines, dominant := meter.Validate(lines, lang)
	hasErrors := meter.HasErrors(lines)

	res := domain.CompositionResult{
		Language:  lang,
		Mode:      o.mode,
		Lines:     lines,
		HasErrors: hasErrors,
		Message:   meter.Message(lang, lines),
		Dominant:  dominant,
	}
	if !hasErrors {
		if first, ok := firstValid(lines); ok {
			d := foot.Describe(first, lang)
			res.Meter = &d
		}
	}
	return res
}

type lineResult struct {
	line domain.LineAnalysis
	ok   bool
}

func analyzeLine(raw string, lang domain.Script, mode domain.SegmentationMode) lineResult {
	if !script.IsLineLegal(raw, lang) {
		return lineResult{line: domain.NewInvalidLine(raw), ok: true}
	}

	syls := syllable.Syllabify(raw, lang)
	if len(syls) == 0 {
		return lineResult{}
	}

	if mode == domain.SegmentationFixed {
		units, feet := foot.SegmentFixed(syls, lang)
		return lineResult{line: domain.NewLine(raw, units, feet), ok: true}
	}
	return lineResult{line: domain.NewLine(raw, syls, foot.Segment(syls, lang)), ok: true}
}

func firstValid(lines []domain.LineAnalysis) (domain.LineAnalysis, bool) {
	for _, l := range lines {
		if !l.IsInvalid && len(l.Feet) > 0 {
			return l, true
		}
	}
	return domain.LineAnalysis{}, false
}
