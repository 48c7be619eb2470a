package registry

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pass-finder/core/storage"

	"github.com/goccy/go-yaml"
	"gorm.io/gorm"
)

//go:embed data/locations.json
var embeddedLocations []byte

// Format is the encoding of a registry document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the document format from a file or object name.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes a registry document: an ordered list of locations.
func Parse(data []byte, format Format) ([]Location, error) {
	var locations []Location
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &locations); err != nil {
			return nil, fmt.Errorf("failed to parse registry yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&locations); err != nil {
			return nil, fmt.Errorf("failed to parse registry json: %w", err)
		}
	}
	return locations, nil
}

// Encode serializes locations as an indented registry document.
func Encode(locations []Location, format Format) ([]byte, error) {
	if format == FormatYAML {
		return yaml.Marshal(locations)
	}
	return json.MarshalIndent(locations, "", "  ")
}

// Embedded returns the registry compiled into the binary.
func Embedded() (*Registry, error) {
	locations, err := Parse(embeddedLocations, FormatJSON)
	if err != nil {
		return nil, err
	}
	return New(locations)
}

// LoadFile reads a registry from a JSON or YAML file.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}
	locations, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, err
	}
	return New(locations)
}

// Load builds the registry from the configured source. The storage client and database
// are only required by their respective sources and may be nil otherwise.
func Load(ctx context.Context, cfg Config, client storage.Client, bucket string, db *gorm.DB) (*Registry, error) {
	switch cfg.Source {
	case SourceEmbedded, "":
		return Embedded()
	case SourceFile:
		return LoadFile(cfg.Path)
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("registry source %q requires a storage client", cfg.Source)
		}
		return LoadFromStorage(ctx, client, bucket, cfg.Object)
	case SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("registry source %q requires a database connection", cfg.Source)
		}
		return LoadFromDatabase(ctx, db)
	default:
		return nil, fmt.Errorf("unknown registry source: %s", cfg.Source)
	}
}
