// Package motif holds the ordered table of named lux-box sequences that
// luxmeme turns into MEME motifs.
package motif

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed motifs.yaml
var defaultTable []byte

// ErrInvalidTable is returned when a table document is malformed.
var ErrInvalidTable = errors.New("invalid motif table")

// Entry is a single named sequence.
type Entry struct {
	Name     string `yaml:"name" mapstructure:"name"`
	Sequence string `yaml:"sequence" mapstructure:"sequence"`
}

// Width is the motif width, i.e. the sequence length.
func (e Entry) Width() int {
	return len(e.Sequence)
}

// Table is an ordered list of entries. Order is preserved end to end.
type Table []Entry

// Names returns the entry names in table order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for _, e := range t {
		names = append(names, e.Name)
	}
	return names
}

// tableFile represents the structure of motifs.yaml
type tableFile struct {
	Motifs []map[string]any `yaml:"motifs"`
}

var (
	loadOnce   sync.Once
	loadedRef  Table
	loadRefErr error
)

// Default returns the embedded reference table.
// Each call returns a fresh copy so callers cannot mutate the shared table.
func Default() (Table, error) {
	loadOnce.Do(func() {
		loadedRef, loadRefErr = Parse(defaultTable)
	})
	if loadRefErr != nil {
		return nil, loadRefErr
	}
	out := make(Table, len(loadedRef))
	copy(out, loadedRef)
	return out, nil
}

// Parse decodes a YAML table document.
// Names must be unique and non-empty. Sequences are upper-cased but their
// alphabet is not checked here; see meme.Write.
func Parse(data []byte) (Table, error) {
	var doc tableFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse motif table: %w", err)
	}
	if len(doc.Motifs) == 0 {
		return nil, fmt.Errorf("%w: no motifs defined", ErrInvalidTable)
	}

	seen := make(map[string]struct{}, len(doc.Motifs))
	table := make(Table, 0, len(doc.Motifs))
	for i, raw := range doc.Motifs {
		var e Entry
		if err := mapstructure.Decode(raw, &e); err != nil {
			return nil, fmt.Errorf("failed to decode motif #%d: %w", i+1, err)
		}
		e.Name = strings.TrimSpace(e.Name)
		e.Sequence = strings.ToUpper(strings.TrimSpace(e.Sequence))

		if e.Name == "" {
			return nil, fmt.Errorf("%w: motif #%d missing name", ErrInvalidTable, i+1)
		}
		if e.Sequence == "" {
			return nil, fmt.Errorf("%w: motif %q has an empty sequence", ErrInvalidTable, e.Name)
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate motif name %q", ErrInvalidTable, e.Name)
		}
		seen[e.Name] = struct{}{}
		table = append(table, e)
	}
	return table, nil
}
