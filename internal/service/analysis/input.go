package analysis

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/bahr-checker/internal/domain"
)

// AnalyzeInput holds the parameters for analysing one composition.
type AnalyzeInput struct {
	Text string
	Mode domain.SegmentationMode // empty = greedy
}

// Validate checks the input against the service limits and collects all errors.
// Blank text is valid and analyses to an empty result.
func (i AnalyzeInput) Validate(maxTextLength, maxLines int) error {
	var errs []domain.FieldError

	if maxTextLength > 0 && utf8.RuneCountInString(i.Text) > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d characters", maxTextLength)})
	}
	if maxLines > 0 && len(domain.SplitLines(i.Text)) > maxLines {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d lines", maxLines)})
	}
	if i.Mode != "" && !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "unknown segmentation mode"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i AnalyzeInput) mode() domain.SegmentationMode {
	if i.Mode == "" {
		return domain.SegmentationGreedy
	}
	return i.Mode
}
