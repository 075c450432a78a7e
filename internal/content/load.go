package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultYAML []byte

var (
	ErrMissingSectionID = errors.New("section has no id")
	ErrDuplicateSection = errors.New("duplicate section id")
	ErrUnknownKind      = errors.New("unknown section kind")
	ErrDanglingAnchor   = errors.New("nav anchor matches no section")
	ErrReservedSection  = errors.New("section id is reserved")
)

// Default returns the embedded portfolio content.
func Default() (*Portfolio, error) {
	p, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return p, nil
}

// Load reads content from path, or the embedded default when path is empty.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading content file %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates YAML content. Unknown fields are rejected so
// typos in hand-edited files surface at load time.
func Parse(data []byte) (*Portfolio, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Portfolio
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("error unmarshalling content: %w", err)
	}
	p.fillNavLabels()
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Portfolio) fillNavLabels() {
	titleCaser := cases.Title(language.English)
	for i := range p.Nav {
		if p.Nav[i].Label == "" {
			p.Nav[i].Label = titleCaser.String(strings.ReplaceAll(p.Nav[i].Anchor, "-", " "))
		}
	}
}

// Validate checks section ids, including the reserved hero id, and that every nav anchor points at exactly
// one section.
func Validate(p *Portfolio) error {
	seen := make(map[string]struct{}, len(p.Sections))
	for i, s := range p.Sections {
		if s.ID == "" {
			return fmt.Errorf("section %d: %w", i, ErrMissingSectionID)
		}
		if s.ID == HomeID {
			return fmt.Errorf("%w: %q is used by the hero", ErrReservedSection, s.ID)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateSection, s.ID)
		}
		seen[s.ID] = struct{}{}
		if !s.Kind.valid() {
			return fmt.Errorf("section %q: %w %q", s.ID, ErrUnknownKind, s.Kind)
		}
	}
	for _, item := range p.Nav {
		if _, ok := seen[item.Anchor]; !ok {
			return fmt.Errorf("%w: %q", ErrDanglingAnchor, item.Anchor)
		}
	}
	return nil
}
