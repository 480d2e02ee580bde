package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Bahr is a named classical meter from the reference catalog.
type Bahr struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	NameRoman string    `json:"nameRoman"`
	Feet      []string  `json:"feet"`
	Signature string    `json:"signature"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayName returns the name matching the script's label convention.
func (b Bahr) DisplayName(s Script) string {
	if s.UsesRomanLabels() && b.NameRoman != "" {
		return b.NameRoman
	}
	return b.Name
}

// BahrSignature flattens foot groups into the signature used for lookups:
// ["1212", "22"] -> "121222".
func BahrSignature(feet []string) string {
	return strings.Join(feet, "")
}

// ValidateSignature checks that sig is a non-empty string of '1' and '2'.
func ValidateSignature(sig string) error {
	if sig == "" {
		return fmt.Errorf("empty signature")
	}
	for i, r := range sig {
		if r != '1' && r != '2' {
			return fmt.Errorf("invalid weight %q at position %d", r, i)
		}
	}
	return nil
}

// AnalysisRun is an anonymous record of one analysis. It never holds input text.
type AnalysisRun struct {
	ID                uuid.UUID
	Script            Script
	Mode              SegmentationMode
	LineCount         int
	InvalidLineCount  int
	ErrorLineCount    int
	HasErrors         bool
	DominantSignature *string
	CreatedAt         time.Time
}

// NewAnalysisRun summarises a composition result into a run record.
func NewAnalysisRun(res CompositionResult) AnalysisRun {
	run := AnalysisRun{
		Script:           res.Language,
		Mode:             res.Mode,
		LineCount:        len(res.Lines),
		InvalidLineCount: res.InvalidLineCount(),
		ErrorLineCount:   res.ErrorLineCount(),
		HasErrors:        res.HasErrors,
	}
	if res.Dominant != nil {
		sig := res.Dominant.WeightSignature
		run.DominantSignature = &sig
	}
	return run
}

// ScriptStats aggregates analysis runs per script.
type ScriptStats struct {
	Script         Script `json:"script"`
	Runs           int    `json:"runs"`
	Lines          int    `json:"lines"`
	RunsWithErrors int    `json:"runsWithErrors"`
}
