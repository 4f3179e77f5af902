// Package config resolves the layered build configuration: a base section
// plus one overlay per platform, flattened for the platform being built.
package config

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// Recognized configuration keys.
const (
	KeyAppName        = "app_name"
	KeyVersion        = "version"
	KeyMainScript     = "main_script"
	KeyBuildDir       = "build_dir"
	KeyDistDir        = "dist_dir"
	KeyAdditionalData = "additional_data"
	KeyHiddenImports  = "hidden_imports"
	KeyExcludeModules = "exclude_modules"
	KeyIconFile       = "icon_file"
	KeyCompany        = "company"

	// Windows.
	KeyConsole     = "console"
	KeyAdminAccess = "admin_access"
	KeyUACAdmin    = "uac_admin"
	KeyVersionFile = "version_file"

	// macOS.
	KeyBundleIdentifier = "bundle_identifier"
	KeyEntitlementsFile = "entitlements_file"
	KeyInfoPlist        = "info_plist"

	// Linux.
	KeyDesktopFile = "desktop_file"
	KeyCategories  = "categories"
)

// Values is a flat build configuration: option name to value. Values are
// strings, bools, lists or nested mappings as decoded from the document.
// A resolved Values is treated as read-only.
type Values map[string]any

// DataFile is a (source, destination) pair passed to the bundler.
type DataFile struct {
	Source      string
	Destination string
}

// Merge returns base with every overlay key laid on top. Keys only present
// in base survive unchanged. Neither input is modified.
func Merge(base, overlay Values) Values {
	if base == nil {
		base = Values{}
	}
	if overlay == nil {
		overlay = Values{}
	}
	return lo.Assign(base, overlay)
}

// Clone returns a shallow copy of v.
func (v Values) Clone() Values {
	return Merge(v, nil)
}

// Has reports whether key is present.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// String returns the value at key coerced to a string, or "" when absent.
func (v Values) String(key string) string {
	return cast.ToString(v[key])
}

// StringOr returns the value at key, or fallback when absent or empty.
func (v Values) StringOr(key, fallback string) string {
	if s := v.String(key); s != "" {
		return s
	}
	return fallback
}

// Bool returns the value at key coerced to a bool, or false when absent.
func (v Values) Bool(key string) bool {
	return cast.ToBool(v[key])
}

// Strings returns the list at key as strings. Order is preserved.
func (v Values) Strings(key string) []string {
	if !v.Has(key) || v[key] == nil {
		return nil
	}
	return cast.ToStringSlice(v[key])
}

// Map returns the nested mapping at key, or an empty Values.
func (v Values) Map(key string) Values {
	m, err := cast.ToStringMapE(v[key])
	if err != nil || m == nil {
		return Values{}
	}
	return Values(m)
}

// DataFiles decodes additional_data. Each entry is either a two-element list
// [source, destination] or a mapping with source and destination keys.
func (v Values) DataFiles() ([]DataFile, error) {
	raw, ok := v[KeyAdditionalData]
	if !ok || raw == nil {
		return nil, nil
	}

	var entries []any
	switch list := raw.(type) {
	case []any:
		entries = list
	case [][]string:
		for _, pair := range list {
			entries = append(entries, pair)
		}
	default:
		return nil, fmt.Errorf("%s: expected a list, got %T", KeyAdditionalData, raw)
	}

	files := make([]DataFile, 0, len(entries))
	for i, entry := range entries {
		switch entry.(type) {
		case map[string]any, map[any]any, map[string]string:
			m, err := cast.ToStringMapE(entry)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", KeyAdditionalData, i, err)
			}
			src, dst := cast.ToString(m["source"]), cast.ToString(m["destination"])
			if src == "" || dst == "" {
				return nil, fmt.Errorf("%s[%d]: source and destination are required", KeyAdditionalData, i)
			}
			files = append(files, DataFile{Source: src, Destination: dst})
		case []any, []string:
			pair, err := cast.ToStringSliceE(entry)
			if err != nil || len(pair) != 2 {
				return nil, fmt.Errorf("%s[%d]: expected [source, destination]", KeyAdditionalData, i)
			}
			files = append(files, DataFile{Source: pair[0], Destination: pair[1]})
		default:
			return nil, fmt.Errorf("%s[%d]: expected [source, destination] or a mapping, got %T", KeyAdditionalData, i, entry)
		}
	}
	return files, nil
}

// Keys returns the keys of v in sorted order.
func (v Values) Keys() []string {
	keys := lo.Keys(v)
	sort.Strings(keys)
	return keys
}
