package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/internal/prosody/foot"
)

const (
	statusOK      = "ok"
	statusInvalid = "invalid characters"
	emptyCell     = "-"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// renderResult writes a per-line report followed by the status message and,
// for clean compositions, the detected meter.
func renderResult(w io.Writer, res *domain.CompositionResult) error {
	fmt.Fprintf(w, "script: %s  mode: %s\n", res.Language, res.Mode)
	if len(res.Lines) == 0 {
		_, err := fmt.Fprintln(w, "no lines to analyze")
		return err
	}
	fmt.Fprintln(w)

	tw := newTable(w)
	fmt.Fprintln(tw, "#\tLINE\tFEET\tWEIGHTS\tSTATUS")
	for i, l := range res.Lines {
		names, cells := emptyCell, emptyCell
		if len(l.Feet) > 0 {
			names, cells = footColumns(l.Feet)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, l.RawLine, names, cells, lineStatus(l))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, res.Message)

	if m := res.Meter; m != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, m.Title)
		fmt.Fprintf(w, "  %s\n  %s\n", m.PatternString, m.WeightPattern)
		if m.Bahr != nil {
			fmt.Fprintf(w, "  %s\n", m.Bahr.DisplayName(res.Language))
		}
	}
	return nil
}

func footColumns(feet []domain.Foot) (names, cells string) {
	n := make([]string, len(feet))
	c := make([]string, len(feet))
	for i, f := range feet {
		n[i] = f.Name
		c[i] = strings.Join(f.Cells, "")
	}
	return strings.Join(n, " "), strings.Join(c, " ")
}

func lineStatus(l domain.LineAnalysis) string {
	switch {
	case l.IsInvalid:
		return statusInvalid
	case l.HasMeterError:
		return string(l.ErrorKind)
	default:
		return statusOK
	}
}

// renderFeet lists the library in declaration order.
func renderFeet(w io.Writer, entries []foot.Entry) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "KEY\tNAME\tROMAN\tPATTERN\tTAG")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.Key, e.Name, e.NameRoman, e.Signature(), e.Tag)
	}
	return tw.Flush()
}
