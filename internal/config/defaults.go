package config

import "github.com/appbuild/cli/internal/platform"

// DefaultConfigFile is the document path used when neither --config nor
// APPBUILD_CONFIG is set.
const DefaultConfigFile = "build_config.json"

// DefaultBase returns the built-in platform-independent options. The icon
// path depends on the platform's icon suffix.
func DefaultBase(p platform.Platform) Values {
	return Values{
		KeyAppName:        "YourApp",
		KeyVersion:        "1.0.0",
		KeyMainScript:     "main.py",
		KeyBuildDir:       "build",
		KeyDistDir:        "dist",
		KeyAdditionalData: []any{},
		KeyHiddenImports:  []any{},
		KeyExcludeModules: []any{},
		KeyIconFile:       "icons/app_icon" + p.IconSuffix(),
	}
}

// DefaultOverlay returns the built-in overlay for p.
func DefaultOverlay(p platform.Platform) Values {
	switch p {
	case platform.Windows:
		return Values{
			KeyConsole:     false,
			KeyAdminAccess: false,
			KeyUACAdmin:    false,
			KeyVersionFile: "version.txt",
		}
	case platform.MacOS:
		return Values{
			KeyBundleIdentifier: "com.example.yourapp",
			KeyEntitlementsFile: "entitlements.plist",
			KeyInfoPlist:        "Info.plist",
		}
	case platform.Linux:
		return Values{
			KeyConsole:     false,
			KeyDesktopFile: "app.desktop",
			KeyCategories:  "Utility;",
		}
	default:
		return Values{}
	}
}

// Defaults returns the built-in configuration resolved for p.
func Defaults(p platform.Platform) Values {
	return Merge(DefaultBase(p), DefaultOverlay(p))
}

// DefaultDocument returns the layered document holding the built-in
// defaults for every platform. The base icon uses the host's suffix.
func DefaultDocument(host platform.Platform) *Document {
	doc := NewDocument(DefaultBase(host))
	for _, p := range platform.All() {
		doc.Platforms[p] = DefaultOverlay(p)
	}
	return doc
}
