package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/appbuild/cli/internal/output"
)

// Save writes doc to path, overwriting any existing file. YAML is used for
// .yaml and .yml paths, JSON with four-space indentation otherwise. Keys are
// written exactly as loaded, including case and dots.
func Save(doc *Document, path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	format := output.FormatJSON
	if documentType(expanded) == "yaml" {
		format = output.FormatYAML
	}

	var buf bytes.Buffer
	if err := output.WriteDocument(&buf, doc.Raw(), format); err != nil {
		return fmt.Errorf("encoding config document: %w", err)
	}

	if dir := filepath.Dir(expanded); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	if err := os.WriteFile(expanded, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config document: %w", err)
	}
	return nil
}
