package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	oerrors "github.com/appbuild/cli/internal/errors"
	"github.com/appbuild/cli/internal/platform"
)

// Source indicates where a resolved configuration came from.
type Source string

const (
	// SourceFile indicates the configuration was read from a document.
	SourceFile Source = "file"
	// SourceDefault indicates the built-in defaults were used.
	SourceDefault Source = "default"
)

// Loader reads layered configuration documents.
type Loader struct {
	log *log.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *log.Logger) *Loader {
	return &Loader{log: logger}
}

// documentType maps a path to the viper config type used to parse it.
func documentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// Load reads the document at path. A missing file yields ErrConfigNotFound;
// a file that exists but cannot be parsed yields ErrConfigParse.
func (l *Loader) Load(path string) (*Document, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, oerrors.Wrap(oerrors.ErrConfigNotFound, expanded)
		}
		return nil, fmt.Errorf("checking config file: %w", err)
	}
	if info.IsDir() {
		return nil, oerrors.NewParseError(expanded, errors.New("path is a directory"))
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	v := viper.New()
	v.SetConfigType(documentType(expanded))
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, oerrors.NewParseError(expanded, err)
	}

	// viper folds key case and splits dotted keys, so the sections are
	// decoded from the raw bytes to keep keys as written.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, oerrors.NewParseError(expanded, err)
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, oerrors.NewParseError(expanded, err)
	}

	l.log.Debug("loaded config document", "path", expanded, "overlays", len(doc.Platforms))
	return doc, nil
}

// decodeDocument converts the raw two-level mapping into a Document.
func decodeDocument(raw map[string]any) (*Document, error) {
	base, err := section(raw, BaseSection)
	if err != nil {
		return nil, err
	}

	doc := NewDocument(base)
	for _, p := range platform.All() {
		overlay, err := section(raw, p.String())
		if err != nil {
			return nil, err
		}
		if _, present := raw[p.String()]; present {
			doc.Platforms[p] = overlay
		}
	}
	return doc, nil
}

func section(raw map[string]any, name string) (Values, error) {
	v, ok := raw[name]
	if !ok || v == nil {
		return Values{}, nil
	}
	m, err := cast.ToStringMapE(v)
	if err != nil {
		return nil, fmt.Errorf("section %q must be a mapping", name)
	}
	return Values(m), nil
}

// Resolve returns the configuration for p from the document at path, or the
// built-in defaults when no document exists. Parse errors are returned, never
// replaced by defaults.
func (l *Loader) Resolve(path string, p platform.Platform) (Values, Source, error) {
	doc, err := l.Load(path)
	if err != nil {
		if errors.Is(err, oerrors.ErrConfigNotFound) {
			l.log.Debug("no config document, using defaults", "path", path, "platform", p)
			return Defaults(p), SourceDefault, nil
		}
		return nil, "", err
	}
	return doc.Resolve(p), SourceFile, nil
}

// LoadOrDefault returns the document at path, or the built-in default
// document when none exists.
func (l *Loader) LoadOrDefault(path string, host platform.Platform) (*Document, Source, error) {
	doc, err := l.Load(path)
	if err != nil {
		if errors.Is(err, oerrors.ErrConfigNotFound) {
			return DefaultDocument(host), SourceDefault, nil
		}
		return nil, "", err
	}
	return doc, SourceFile, nil
}
