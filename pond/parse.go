package pond

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Parse reads a pond in the text format from r.
// Lines starting with '#' and blank lines are skipped.
func Parse(r io.Reader) (*Pond, error) {
	var grid [][]string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		grid = append(grid, strings.Fields(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pond: read: %w", err)
	}

	return New(grid)
}

// Load opens path and parses it with Parse. The pond is named after the file.
func Load(path string) (*Pond, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pond: open %q: %w", path, err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("pond: load %q: %w", path, err)
	}
	p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return p, nil
}

// LoadFile loads path with LoadYAML for ".yaml"/".yml" files and with Load
// otherwise.
func LoadFile(path string) (*Pond, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return Load(path)
	}
}
