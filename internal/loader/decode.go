// file: internal/loader/decode.go
// version: 1.0.0
// guid: 94f9205d-d9e0-4790-ac9a-0b1ec242239d

package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jdfalk/folio/internal/content"
)

// Extensions lists the content file formats the loader understands.
var Extensions = []string{".json", ".yaml", ".yml", ".toml"}

// IsContentFile reports whether path has a supported extension.
func IsContentFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Unknown keys are rejected in every format so a misspelled field fails
// the build instead of silently falling back to canonical text.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%s: file is empty", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(v)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(v)
		if errors.Is(err, io.EOF) {
			err = errors.New("no document")
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(v)
	default:
		return fmt.Errorf("%s: unsupported format", path)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// File documents embed the record and add the inline overlay block keyed by
// language tag. The record's own Localized field is never decoded.

type projectDoc struct {
	content.Project `yaml:",inline"`
	Localized       map[string]content.ProjectOverlay `json:"localized,omitempty" yaml:"localized,omitempty" toml:"localized,omitempty"`
}

type pageDoc struct {
	content.Page `yaml:",inline"`
	Localized    map[string]content.PageOverlay `json:"localized,omitempty" yaml:"localized,omitempty" toml:"localized,omitempty"`
}

type experienceDoc struct {
	content.Experience `yaml:",inline"`
	Localized          map[string]content.ExperienceOverlay `json:"localized,omitempty" yaml:"localized,omitempty" toml:"localized,omitempty"`
}
