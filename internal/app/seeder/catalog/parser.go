// Package catalog parses the bahr catalog YAML into domain bahrs.
// File in, domain structs out; no database access.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/bahr-checker/internal/domain"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type file struct {
	Bahrs []entry `yaml:"bahrs"`
}

type entry struct {
	Slug      string   `yaml:"slug"`
	Name      string   `yaml:"name"`
	NameRoman string   `yaml:"name_roman"`
	Feet      []string `yaml:"feet"`
}

// ParseFile opens path and parses it.
func ParseFile(path string) ([]domain.Bahr, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a catalog document. Unknown keys are rejected. Names have
// their whitespace collapsed and signatures are derived from the feet.
// Every entry is checked; all problems come back joined in one error.
func Parse(r io.Reader) ([]domain.Bahr, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc file
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Bahr{}, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	var (
		out       = make([]domain.Bahr, 0, len(doc.Bahrs))
		errs      []error
		slugs     = make(map[string]int, len(doc.Bahrs))
		signature = make(map[string]string, len(doc.Bahrs))
	)
	for i, e := range doc.Bahrs {
		b, err := e.toDomain()
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d (%q): %w", i+1, e.Slug, err))
			continue
		}
		if prev, dup := slugs[b.Slug]; dup {
			errs = append(errs, fmt.Errorf("entry %d: slug %q already used by entry %d", i+1, b.Slug, prev))
			continue
		}
		if owner, dup := signature[b.Signature]; dup {
			errs = append(errs, fmt.Errorf("entry %d (%q): signature %s already used by %q", i+1, b.Slug, b.Signature, owner))
			continue
		}
		slugs[b.Slug] = i + 1
		signature[b.Signature] = b.Slug
		out = append(out, b)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

func (e entry) toDomain() (domain.Bahr, error) {
	if !slugPattern.MatchString(e.Slug) {
		return domain.Bahr{}, fmt.Errorf("slug must be lowercase words joined by '-'")
	}

	name := domain.CollapseSpaces(e.Name)
	if name == "" {
		return domain.Bahr{}, fmt.Errorf("name is required")
	}
	if len(e.Feet) == 0 {
		return domain.Bahr{}, fmt.Errorf("at least one foot is required")
	}
	for j, f := range e.Feet {
		if err := domain.ValidateSignature(f); err != nil {
			return domain.Bahr{}, fmt.Errorf("foot %d: %w", j+1, err)
		}
	}

	feet := make([]string, len(e.Feet))
	copy(feet, e.Feet)

	return domain.Bahr{
		Slug:      e.Slug,
		Name:      name,
		NameRoman: domain.CollapseSpaces(e.NameRoman),
		Feet:      feet,
		Signature: domain.BahrSignature(feet),
	}, nil
}
