// Package config loads scoring configuration overrides from YAML or JSON
// documents and merges them over the built-in defaults.
package config

import (
	"bytes"
	"encoding/json"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/authentiq/authentiq/internal/domain"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = ".authentiq.yaml"

//go:embed schema.json
var schemaJSON string

var overridesSchema = jsonschema.MustCompileString("config.schema.json", schemaJSON)

// Loader implements domain.ConfigLoader for file-based overrides.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads an overrides document, merges it over the defaults, and
// validates the result. An empty path falls back to DefaultFileName; if that
// does not exist either, the built-in defaults are returned. An explicit path
// that cannot be read is an error: a caller who names a config expects it to
// be used, not silently replaced with defaults.
func (l *Loader) Load(path string) (domain.HASConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.HASConfig{}, fmt.Errorf("reading config: %w", err)
	}

	overrides, err := parseOverrides(path, data)
	if err != nil {
		return domain.HASConfig{}, err
	}

	cfg := domain.DefaultConfig().Merge(overrides)
	if err := cfg.Validate(); err != nil {
		return domain.HASConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func parseOverrides(path string, data []byte) (domain.Overrides, error) {
	var o domain.Overrides

	if strings.EqualFold(filepath.Ext(path), ".json") {
		// JSON documents are schema-checked first so typos and wrong types
		// fail with a pointer to the offending field.
		var instance any
		if err := json.Unmarshal(data, &instance); err != nil {
			return o, fmt.Errorf("parsing %s: %w", path, err)
		}
		if err := overridesSchema.Validate(instance); err != nil {
			return o, fmt.Errorf("invalid config %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &o); err != nil {
			return o, fmt.Errorf("parsing %s: %w", path, err)
		}
		return o, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return o, fmt.Errorf("parsing %s: %w", path, err)
	}
	return o, nil
}
