package meter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/internal/prosody/foot"
)

func lineOf(t *testing.T, sig string) domain.LineAnalysis {
	t.Helper()

	syls := make([]domain.Syllable, len(sig))
	for i, c := range sig {
		w := domain.WeightLight
		if c == '2' {
			w = domain.WeightHeavy
		}
		syls[i] = domain.Syllable{Text: string(rune('a' + i)), Weight: w}
	}
	return domain.NewLine(sig, syls, foot.Segment(syls, domain.ScriptRomanized))
}

const mujtas = "12121122121222"

func TestInfer_Majority(t *testing.T) {
	t.Parallel()

	lines := []domain.LineAnalysis{
		lineOf(t, mujtas),
		lineOf(t, mujtas),
		lineOf(t, "1212112212122"),
	}

	got := Infer(lines)
	require.NotNil(t, got)
	assert.Equal(t, 14, got.SyllableCount)
	assert.Equal(t, mujtas, got.WeightSignature)
}

func TestInfer_TieGoesToFirstSeen(t *testing.T) {
	t.Parallel()

	lines := []domain.LineAnalysis{
		lineOf(t, "2122"),
		lineOf(t, "1212"),
		lineOf(t, "22"),
	}

	got := Infer(lines)
	require.NotNil(t, got)
	assert.Equal(t, "2122", got.WeightSignature)
}

func TestInfer_OnlyFirstThreeLines(t *testing.T) {
	t.Parallel()

	lines := []domain.LineAnalysis{
		lineOf(t, "1212"),
		lineOf(t, "22"),
		lineOf(t, "212"),
		lineOf(t, "22"),
		lineOf(t, "22"),
	}

	got := Infer(lines)
	require.NotNil(t, got)
	assert.Equal(t, "1212", got.WeightSignature)
}

func TestInfer_SkipsInvalidLines(t *testing.T) {
	t.Parallel()

	lines := []domain.LineAnalysis{
		domain.NewInvalidLine("yeh 2 dil"),
		lineOf(t, "22"),
	}

	got := Infer(lines)
	require.NotNil(t, got)
	assert.Equal(t, "22", got.WeightSignature)

	assert.Nil(t, Infer(nil))
	assert.Nil(t, Infer([]domain.LineAnalysis{domain.NewInvalidLine("1")}))
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dominant := &domain.DominantPattern{SyllableCount: 4, WeightSignature: "1212"}

	tests := []struct {
		name string
		line domain.LineAnalysis
		want domain.ErrorKind
	}{
		{name: "valid", line: lineOf(t, "1212"), want: domain.ErrorKindNone},
		{name: "too short", line: lineOf(t, "121"), want: domain.ErrorKindTooShort},
		{name: "too long", line: lineOf(t, "12122"), want: domain.ErrorKindTooLong},
		{name: "mismatch", line: lineOf(t, "1122"), want: domain.ErrorKindPatternMismatch},
		{name: "invalid line not checked", line: domain.NewInvalidLine("x"), want: domain.ErrorKindNone},
	}
	for _, tt := range tests {
		if got := Check(tt.line, dominant); got != tt.want {
			t.Errorf("%s: Check() = %s, want %s", tt.name, got, tt.want)
		}
	}

	if got := Check(lineOf(t, "1"), nil); got != domain.ErrorKindNone {
		t.Errorf("nil dominant: got %s, want NONE", got)
	}
}

func TestAnnotate_TooShort(t *testing.T) {
	t.Parallel()

	// 1212 1122 1212 2 -> feet mufailun, failatun, mufailun, fe
	line := lineOf(t, "1212112212122")
	require.Len(t, line.Feet, 4)

	got := Annotate(line, domain.ErrorKindTooShort, nil, domain.ScriptRomanized)

	assert.True(t, got.HasMeterError)
	assert.Equal(t, domain.ErrorKindTooShort, got.ErrorKind)
	// floor(0.6 * 4) = 2
	assert.False(t, got.Feet[0].IsError)
	assert.False(t, got.Feet[1].IsError)
	assert.True(t, got.Feet[2].IsError)
	assert.True(t, got.Feet[3].IsError)
	assert.Equal(t, "error", got.Feet[2].Name)
	assert.Equal(t, foot.TagRed, got.Feet[2].Tag)
	assert.Equal(t, []string{"x", "x", "x", "x"}, got.Feet[2].Cells)

	// Input untouched.
	assert.False(t, line.HasMeterError)
	for _, f := range line.Feet {
		assert.False(t, f.IsError)
	}
}

func TestAnnotate_TooLong(t *testing.T) {
	t.Parallel()

	line := lineOf(t, "121222") // mufailun + felun
	dominant := &domain.DominantPattern{SyllableCount: 5, WeightSignature: "12122"}

	got := Annotate(line, domain.ErrorKindTooLong, dominant, domain.ScriptDevanagari)

	require.Len(t, got.Syllables, 6)
	for i, s := range got.Syllables {
		assert.Equal(t, i >= 5, s.IsError, "syllable %d", i)
	}
	assert.False(t, got.Feet[0].IsError)
	assert.True(t, got.Feet[1].IsError)
	assert.Equal(t, "त्रुटि", got.Feet[1].Name)
	assert.Equal(t, []string{"2", "x"}, got.Feet[1].Cells)
}

func TestAnnotate_PatternMismatch(t *testing.T) {
	t.Parallel()

	line := lineOf(t, "2122212") // failun, felun, residual pair
	require.Len(t, line.Feet, 3)
	got := Annotate(line, domain.ErrorKindPatternMismatch, nil, domain.ScriptRomanized)

	cut := 1 // floor(0.5 * 3)
	for i, f := range got.Feet {
		assert.Equal(t, i >= cut, f.IsError, "foot %d", i)
	}
}

func TestAnnotate_FootErrorIffSyllableError(t *testing.T) {
	t.Parallel()

	dominant := &domain.DominantPattern{SyllableCount: 8, WeightSignature: "12121122"}
	for _, sig := range []string{"1212", "121211221", "12121121", "2222", "1"} {
		line := lineOf(t, sig)
		got := Annotate(line, Check(line, dominant), dominant, domain.ScriptRomanized)
		for _, f := range got.Feet {
			hasErr := false
			for _, s := range f.Syllables {
				hasErr = hasErr || s.IsError
			}
			assert.Equal(t, hasErr, f.IsError, "signature %s foot %q", sig, f.Name)
		}
	}
}

func TestValidate_MajorityExample(t *testing.T) {
	t.Parallel()

	lines := []domain.LineAnalysis{
		lineOf(t, mujtas),
		lineOf(t, mujtas),
		lineOf(t, "1212112212122"),
	}

	got, dominant := Validate(lines, domain.ScriptRomanized)
	require.NotNil(t, dominant)
	assert.Equal(t, mujtas, dominant.WeightSignature)

	assert.Equal(t, domain.ErrorKindNone, got[0].ErrorKind)
	assert.Equal(t, domain.ErrorKindNone, got[1].ErrorKind)
	assert.Equal(t, domain.ErrorKindTooShort, got[2].ErrorKind)
	assert.True(t, HasErrors(got))
}

func TestValidate_NoLines(t *testing.T) {
	t.Parallel()

	got, dominant := Validate(nil, domain.ScriptRomanized)
	assert.Nil(t, dominant)
	assert.Empty(t, got)
	assert.False(t, HasErrors(got))
}

func TestMessage(t *testing.T) {
	t.Parallel()

	clean := lineOf(t, "1212")
	broken := clean
	broken.HasMeterError = true
	invalid := domain.NewInvalidLine("yeh 2 dil")

	tests := []struct {
		name   string
		script domain.Script
		lines  []domain.LineAnalysis
		want   string
	}{
		{name: "empty", script: domain.ScriptRomanized, want: ""},
		{name: "clean roman", script: domain.ScriptRomanized, lines: []domain.LineAnalysis{clean}, want: "Great! Your poetry is in Bahr. Keep up the good work!"},
		{name: "clean mixed", script: domain.ScriptMixed, lines: []domain.LineAnalysis{clean, clean}, want: "बहुत बढ़िया! आपकी कविता बहर में है। अच्छा काम जारी रखें!"},
		{name: "broken roman", script: domain.ScriptRomanized, lines: []domain.LineAnalysis{clean, broken}, want: "Line is short, error near red blocks"},
		{name: "broken devanagari", script: domain.ScriptDevanagari, lines: []domain.LineAnalysis{clean, broken}, want: "पंक्ति छोटी है, लाल ब्लॉक के पास त्रुटि"},
		{name: "illegal only", script: domain.ScriptDevanagari, lines: []domain.LineAnalysis{invalid}, want: IllegalInputMessage},
		{name: "illegal wins over broken", script: domain.ScriptRomanized, lines: []domain.LineAnalysis{broken, invalid}, want: IllegalInputMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Message(tt.script, tt.lines))
		})
	}
}

func TestHasErrors_InvalidLine(t *testing.T) {
	t.Parallel()
	assert.True(t, HasErrors([]domain.LineAnalysis{domain.NewInvalidLine("yeh 2")}))
}
