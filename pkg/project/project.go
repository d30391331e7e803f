package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-webshell/pkg/config"
)

// Format selects the project file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from the file extension. Anything that is
// not .json is written as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Option customises a Store.
type Option func(*Store)

// WithLogger routes diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used to stamp history entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store loads and saves project files.
type Store struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewStore constructs a Store. Without WithLogger diagnostics are discarded.
func NewStore(opts ...Option) *Store {
	s := &Store{logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Load reads path and returns the validated configuration it describes.
func (s *Store) Load(path string) (config.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config.Configuration{}, fmt.Errorf("project: read %s: %w", path, err)
	}
	return s.Parse(data, path)
}

// Parse decodes a YAML or JSON project document. Shape errors and
// configuration invariant violations are returned as config.Errors.
func (s *Store) Parse(data []byte, source string) (config.Configuration, error) {
	log := s.logger.Sugar().Named("project")

	if len(bytes.TrimSpace(data)) == 0 {
		return config.Configuration{}, fmt.Errorf("project: file %s is empty", source)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return config.Configuration{}, fmt.Errorf("project: parse %s: %w", source, err)
	}
	if err := validateShape(raw); err != nil {
		return config.Configuration{}, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return config.Configuration{}, fmt.Errorf("project: decode %s: %w", source, err)
	}
	if err := defaults.Set(&doc); err != nil {
		return config.Configuration{}, fmt.Errorf("project: apply defaults: %w", err)
	}

	cfg := doc.Configuration()
	if cfg.IsBundled() && cfg.Headers.Len() > 0 {
		log.Warnw("headers are ignored for bundled content", "source", source, "headers", cfg.Headers.Keys())
	}
	if err := cfg.Validate(); err != nil {
		return config.Configuration{}, err
	}

	log.Debugw("project loaded", "source", source, "package", cfg.PackageIdentifier, "mode", string(cfg.ContentMode))
	return cfg, nil
}

// Save validates cfg and writes it to path, creating parent directories.
func (s *Store) Save(path string, cfg config.Configuration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := Encode(cfg, FormatFromPath(path))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("project: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("project: write %s: %w", path, err)
	}

	s.logger.Sugar().Named("project").Infow("project saved", "path", path)
	return nil
}

// Encode serialises cfg in the requested format.
func Encode(cfg config.Configuration, format Format) ([]byte, error) {
	doc := FromConfiguration(cfg)

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("project: encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML, "":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("project: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("project: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("project: unsupported format %q", format)
	}
}
