package meter

import "github.com/heartmarshall/bahr-checker/internal/domain"

const (
	successMessage      = "बहुत बढ़िया! आपकी कविता बहर में है। अच्छा काम जारी रखें!"
	successMessageRoman = "Great! Your poetry is in Bahr. Keep up the good work!"
	errorMessage        = "पंक्ति छोटी है, लाल ब्लॉक के पास त्रुटि"
	errorMessageRoman   = "Line is short, error near red blocks"

	// IllegalInputMessage is shown in every script when any line holds
	// illegal characters.
	IllegalInputMessage = "The system could not match the Behr in the highlighted lines"
)

// HasErrors reports whether any line is invalid or breaks the meter.
func HasErrors(lines []domain.LineAnalysis) bool {
	for _, l := range lines {
		if l.IsInvalid || l.HasMeterError {
			return true
		}
	}
	return false
}

// Message returns the fixed status message for lines analysed in script s.
// Illegal lines take precedence over meter errors. An empty composition has
// no message.
func Message(s domain.Script, lines []domain.LineAnalysis) string {
	if len(lines) == 0 {
		return ""
	}

	invalid, broken := false, false
	for _, l := range lines {
		invalid = invalid || l.IsInvalid
		broken = broken || l.HasMeterError
	}

	roman := s.UsesRomanLabels()
	switch {
	case invalid:
		return IllegalInputMessage
	case broken && roman:
		return errorMessageRoman
	case broken:
		return errorMessage
	case roman:
		return successMessageRoman
	default:
		return successMessage
	}
}
