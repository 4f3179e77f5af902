package artifacts

import (
	"fmt"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/appbuild/cli/internal/config"
	"github.com/appbuild/cli/internal/templates"
)

// DefaultCategories is used when the configuration sets no categories.
const DefaultCategories = "Utility;"

const desktopSection = "Desktop Entry"

var requiredDesktopKeys = []string{"Name", "Exec", "Type", "Categories", "Version"}

// DesktopFilePath returns where CreateDesktopFile writes the entry for cfg.
func DesktopFilePath(cfg config.Values) string {
	return filepath.Join(cfg.String(config.KeyBuildDir), cfg.String(config.KeyAppName)+".desktop")
}

// CreateDesktopFile writes <build_dir>/<app_name>.desktop, creating the build
// directory when needed, and returns its path. The written entry is parsed
// back and checked for the required keys.
func CreateDesktopFile(cfg config.Values) (string, error) {
	appName := cfg.String(config.KeyAppName)
	data := templates.DesktopEntryData{
		Name:       appName,
		Exec:       appName,
		Icon:       appName,
		Categories: cfg.StringOr(config.KeyCategories, DefaultCategories),
		Version:    cfg.String(config.KeyVersion),
	}

	path := DesktopFilePath(cfg)
	if err := templates.NewRenderer(data).RenderTo(templates.DesktopEntry, path); err != nil {
		return "", fmt.Errorf("creating desktop file: %w", err)
	}

	if err := verifyDesktopFile(path, data); err != nil {
		return "", fmt.Errorf("verifying desktop file %s: %w", path, err)
	}
	return path, nil
}

// verifyDesktopFile parses the entry at path and checks that every required
// key is present and that Name round-trips.
func verifyDesktopFile(path string, want templates.DesktopEntryData) error {
	f, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return err
	}

	section, err := f.GetSection(desktopSection)
	if err != nil {
		return fmt.Errorf("missing [%s] section", desktopSection)
	}

	for _, key := range requiredDesktopKeys {
		if !section.HasKey(key) {
			return fmt.Errorf("missing key %s", key)
		}
	}

	if got := section.Key("Name").String(); got != want.Name {
		return fmt.Errorf("key Name is %q, want %q", got, want.Name)
	}
	return nil
}
