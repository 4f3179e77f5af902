package config

import (
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/appbuild/cli/internal/output"
	"github.com/appbuild/cli/internal/platform"
)

// OverlayDiff renders what the overlay for p changes relative to the base
// section. Returns an empty string when the overlay changes nothing.
func OverlayDiff(doc *Document, p platform.Platform, useColor bool) (string, error) {
	base, err := yaml.Marshal(map[string]any(doc.Base))
	if err != nil {
		return "", fmt.Errorf("serializing base: %w", err)
	}

	resolved, err := yaml.Marshal(map[string]any(doc.Resolve(p)))
	if err != nil {
		return "", fmt.Errorf("serializing %s configuration: %w", p, err)
	}

	return output.RenderYAMLDiff(BaseSection, base, p.String(), resolved, useColor)
}
