package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSite []byte

var ErrUnknownFormat = errors.New("unknown content format")

// Default returns the embedded content.
func Default() (*Site, error) {
	return Parse(defaultSite, "yaml")
}

// Load reads a YAML or TOML content file, picking the decoder by extension.
// An empty path yields the embedded content.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	site, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// Parse decodes data in the given format ("yaml" or "toml").
func Parse(data []byte, format string) (*Site, error) {
	var site Site
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &site); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &site); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &site, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	}
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
