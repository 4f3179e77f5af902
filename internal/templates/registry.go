package templates

import (
	"fmt"
	"strings"
)

// Name identifies an embedded template.
type Name string

const (
	// VersionInfo is the Windows version resource descriptor.
	VersionInfo Name = "version_info"

	// DesktopEntry is the Linux desktop entry.
	DesktopEntry Name = "desktop_entry"
)

// templates is the internal registry of available templates.
var templates = map[Name]Template{
	VersionInfo: {
		Name:        VersionInfo,
		File:        "version_info.txt.tmpl",
		Description: "Version resource embedded into the Windows executable",
		Platform:    "windows",
	},
	DesktopEntry: {
		Name:        DesktopEntry,
		File:        "app.desktop.tmpl",
		Description: "Desktop entry installed alongside the Linux executable",
		Platform:    "linux",
	},
}

// Get returns a template by name.
// Returns an error if the template is not found.
func Get(name Name) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: %s", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// List returns all available templates.
func List() []Template {
	return []Template{
		templates[VersionInfo],
		templates[DesktopEntry],
	}
}

// Names returns all template names.
func Names() []string {
	return []string{string(VersionInfo), string(DesktopEntry)}
}
