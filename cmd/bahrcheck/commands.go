package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/heartmarshall/bahr-checker/internal/app"
	"github.com/heartmarshall/bahr-checker/internal/domain"
	"github.com/heartmarshall/bahr-checker/internal/prosody/foot"
	"github.com/heartmarshall/bahr-checker/internal/service/analysis"
)

// AnalyzeCmd runs the pipeline over one composition.
type AnalyzeCmd struct {
	File    string `arg:"" optional:"" help:"Composition file; '-' or empty reads stdin."`
	Mode    string `help:"Foot segmentation." enum:"greedy,fixed" default:"greedy"`
	Format  string `help:"Output format." enum:"text,json" default:"text"`
	Workers int    `help:"Parallel per-line workers." default:"1"`
}

func (c *AnalyzeCmd) Run(g *Globals) error {
	text, err := c.read(g.Stdin)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(g.Stderr, &slog.HandlerOptions{Level: parseLevel(g.LogLevel)}))
	svc := analysis.NewService(logger, nil, nil, analysis.Config{Workers: max(1, c.Workers)})

	res, err := svc.Analyze(context.Background(), analysis.AnalyzeInput{
		Text: text,
		Mode: domain.SegmentationMode(c.Mode),
	})
	if err != nil {
		return err
	}

	if c.Format == "json" {
		enc := json.NewEncoder(g.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	} else if err := renderResult(g.Stdout, res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if res.HasErrors {
		return errComposition
	}
	return nil
}

func (c *AnalyzeCmd) read(stdin io.Reader) (string, error) {
	if c.File == "" || c.File == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(c.File)
	if err != nil {
		return "", fmt.Errorf("read composition: %w", err)
	}
	return string(b), nil
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

// FeetCmd prints the foot library.
type FeetCmd struct{}

func (c *FeetCmd) Run(g *Globals) error {
	return renderFeet(g.Stdout, foot.Library())
}

// VersionCmd prints build information.
type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals) error {
	_, err := fmt.Fprintln(g.Stdout, "bahrcheck", app.BuildVersion())
	return err
}
