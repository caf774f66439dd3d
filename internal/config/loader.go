package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hjson/hjson-go/v4"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Format is a descriptor file format.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatTOML
	FormatHJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	case FormatHJSON:
		return "hjson"
	default:
		return "unknown"
	}
}

// FormatFromPath returns the format implied by a file extension.
// Unrecognized extensions are treated as YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	case ".hjson":
		return FormatHJSON
	default:
		return FormatYAML
	}
}

// FileNames lists the files searched for a descriptor, in order.
// Checks .github/ first, then the repository root.
var FileNames = []string{
	".github/commitlint.yml",
	".commitlintrc.yml",
	".commitlintrc.yaml",
	".commitlintrc.json",
	".commitlintrc.toml",
	".commitlintrc.hjson",
	"commitlint.yml",
}

// FindFile returns the first descriptor file found in dir, or "".
func FindFile(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load builds the effective descriptor for a repository directory. The file
// at path, or the first descriptor FindFile locates in dir, is layered over
// the built-in policy, or over nothing when noDefaults is set.
func Load(dir, path string, noDefaults bool) (*Config, error) {
	builder := NewBuilder()
	if noDefaults {
		builder = NewEmptyBuilder()
	}

	if path == "" {
		path = FindFile(dir)
	}
	if path != "" {
		userCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		builder.Add(userCfg)
	}

	return builder.Build()
}

// LoadFromFile reads and parses a descriptor file, choosing the format from
// the file extension.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	format := FormatFromPath(path)
	log.WithFields(log.Fields{"path": path, "format": format}).Debug("loading commit policy")
	return LoadFromBytesFormat(data, format)
}

// LoadFromBytes parses a descriptor from raw YAML bytes.
func LoadFromBytes(data []byte) (*Config, error) {
	return LoadFromBytesFormat(data, FormatYAML)
}

// LoadFromBytesFormat parses a descriptor in the given format. TOML and HJSON
// documents are decoded generically and then read through the JSON schema so
// every format shares one set of field names.
func LoadFromBytesFormat(data []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	case FormatJSON:
		if err := decodeJSON(data, &cfg); err != nil {
			return nil, err
		}
	case FormatTOML:
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		if err := decodeGeneric(doc, &cfg); err != nil {
			return nil, err
		}
	case FormatHJSON:
		var doc map[string]any
		if err := hjson.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		if err := decodeGeneric(doc, &cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %s", format)
	}
	return &cfg, nil
}

func decodeJSON(data []byte, cfg *Config) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

func decodeGeneric(doc map[string]any, cfg *Config) error {
	if len(doc) == 0 {
		return nil
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return decodeJSON(data, cfg)
}
