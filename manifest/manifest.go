package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/iokit/trunckit/trunc"
)

// Entry names one file and the size it should be truncated to. Sizes
// follow the trunc contract for files: truncating to a size larger than
// the file is allowed and platform-defined.
type Entry struct {
	Path string `yaml:"path" toml:"path" json:"path"`
	Size int64  `yaml:"size" toml:"size" json:"size"`
}

// Manifest is a batch of truncation entries, applied in order.
type Manifest struct {
	Entries []Entry `yaml:"entries" toml:"entries" json:"entries"`
}

// Load reads and validates a manifest file. The format is chosen by
// extension: .yaml/.yml, .toml, or .json.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse yaml manifest: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse toml manifest: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse json manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", ext)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest for empty paths, negative sizes, and
// duplicate paths.
func (m *Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m.Entries))
	for i, e := range m.Entries {
		if e.Path == "" {
			return fmt.Errorf("entry %d: empty path", i)
		}
		if e.Size < 0 {
			return fmt.Errorf("entry %d (%s): negative size %d", i, e.Path, e.Size)
		}
		if _, ok := seen[e.Path]; ok {
			return fmt.Errorf("entry %d: duplicate path %q", i, e.Path)
		}
		seen[e.Path] = struct{}{}
	}
	return nil
}

// Apply truncates each entry's file to its target size, in manifest
// order. The first failure aborts and is returned with the offending
// path; files already truncated stay truncated.
func (m *Manifest) Apply() error {
	for _, e := range m.Entries {
		if err := trunc.ShrinkFile(e.Path, e.Size); err != nil {
			return fmt.Errorf("truncate %s: %w", e.Path, err)
		}
	}
	return nil
}
