// Package templates renders the auxiliary artifacts handed to the bundler.
package templates

// Template describes an embedded artifact template.
type Template struct {
	// Name is the template identifier (version_info, desktop_entry).
	Name Name

	// File is the embedded template file.
	File string

	// Description explains what the rendered artifact is for.
	Description string

	// Platform is the platform identifier that consumes the artifact.
	Platform string
}

// VersionInfoData holds the fields of a Windows version resource.
type VersionInfoData struct {
	// VersionTuple is the comma-joined four-component numeric version (e.g. "1,2,0,0").
	VersionTuple string

	// Version is the version string as configured.
	Version string

	CompanyName string
	Description string
	ProductName string
	Trademark   string
	Copyright   string

	// InternalName is the application name.
	InternalName string

	// OriginalFilename is the executable file name (e.g. "MyApp.exe").
	OriginalFilename string
}

// DesktopEntryData holds the fields of a freedesktop.org desktop entry.
type DesktopEntryData struct {
	Name       string
	Exec       string
	Icon       string
	Categories string
	Version    string
}
