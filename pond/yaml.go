package pond

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a pond.
//
//	name: crossing
//	rows:
//	  - "S . L"
//	  - ". 2 E"
type Document struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ParseYAML decodes a Document from r and builds the Pond it describes.
func ParseYAML(r io.Reader) (*Pond, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyPond
		}
		return nil, fmt.Errorf("pond: decode yaml: %w", err)
	}

	return doc.Build()
}

// LoadYAML opens path and parses it with ParseYAML.
func LoadYAML(path string) (*Pond, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pond: open %q: %w", path, err)
	}
	defer f.Close()

	p, err := ParseYAML(f)
	if err != nil {
		return nil, fmt.Errorf("pond: load %q: %w", path, err)
	}

	return p, nil
}

// Build converts the document rows into a Pond.
func (d Document) Build() (*Pond, error) {
	grid := make([][]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		if strings.TrimSpace(row) == "" {
			continue
		}
		grid = append(grid, strings.Fields(row))
	}
	p, err := New(grid)
	if err != nil {
		return nil, err
	}
	p.Name = d.Name

	return p, nil
}

// Document returns the YAML form of the pond.
func (p *Pond) Document() Document {
	lines := strings.Split(strings.TrimRight(p.String(), "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return Document{Name: p.Name, Rows: lines}
}

// MarshalYAML encodes the pond as a Document.
func (p *Pond) MarshalYAML() (interface{}, error) {
	return p.Document(), nil
}
