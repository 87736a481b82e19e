package presets

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/luca-patrignani/preflop-trainer/domain/hands"
	"github.com/luca-patrignani/preflop-trainer/domain/ranges"
)

// document is the portable form of a preset: the selected hands per position.
type document struct {
	Name   string                      `yaml:"name"`
	Ranges map[hands.Position][]string `yaml:"ranges"`
}

// Export writes p as a YAML document listing the selected hands of every
// position.
func Export(w io.Writer, p Preset) error {
	doc := document{Name: p.Name, Ranges: map[hands.Position][]string{}}
	for pos := range p.Ranges {
		doc.Ranges[pos] = p.Ranges.Selected(pos)
		if doc.Ranges[pos] == nil {
			doc.Ranges[pos] = []string{}
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode preset %s: %w", p.Name, err)
	}
	return enc.Close()
}

// Decode parses a YAML document written by Export into a name and a full
// RangeSet. Positions missing from the document get an empty range.
func Decode(r io.Reader, positions []hands.Position) (string, ranges.RangeSet, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return "", nil, fmt.Errorf("failed to decode preset: %w", err)
	}
	rs := ranges.Initial(positions)
	for pos, selected := range doc.Ranges {
		p, err := hands.ParsePosition(string(pos))
		if err != nil {
			return "", nil, err
		}
		g, ok := rs[p]
		if !ok {
			return "", nil, fmt.Errorf("position %s is not managed", p)
		}
		for _, h := range selected {
			row, col, err := hands.Locate(hands.Normalize(h))
			if err != nil {
				return "", nil, fmt.Errorf("position %s: %w", p, err)
			}
			g[row][col].Selected = true
		}
	}
	return strings.TrimSpace(doc.Name), rs, nil
}

// Import decodes a YAML document and saves it as a new, active preset.
func (m *Manager) Import(r io.Reader) (Preset, error) {
	name, rs, err := Decode(r, m.positions)
	if err != nil {
		return Preset{}, err
	}
	p, ok := m.Create(name, rs)
	if !ok {
		return Preset{}, fmt.Errorf("preset has no name")
	}
	return p, nil
}
