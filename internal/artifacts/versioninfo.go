package artifacts

import (
	"fmt"
	"path/filepath"

	"github.com/appbuild/cli/internal/config"
	"github.com/appbuild/cli/internal/platform"
	"github.com/appbuild/cli/internal/templates"
)

// VersionInfoFile is the fixed name of the generated version resource.
const VersionInfoFile = "version_info.txt"

// DefaultCompanyName is used when the configuration names no company.
const DefaultCompanyName = "Unknown Company"

// NewVersionInfoData derives the version resource fields from cfg.
func NewVersionInfoData(cfg config.Values) (templates.VersionInfoData, error) {
	version := cfg.String(config.KeyVersion)
	normalized, err := NormalizeVersion(version)
	if err != nil {
		return templates.VersionInfoData{}, err
	}

	appName := cfg.String(config.KeyAppName)
	company := cfg.Map(config.KeyCompany)
	companyName := company.StringOr("name", DefaultCompanyName)

	return templates.VersionInfoData{
		VersionTuple:     VersionTuple(normalized),
		Version:          version,
		CompanyName:      companyName,
		Description:      company.StringOr("description", appName),
		ProductName:      company.StringOr("product_name", appName),
		Trademark:        company.StringOr("trademark", companyName),
		Copyright:        company.StringOr("copyright", "Copyright (c) "+companyName),
		InternalName:     appName,
		OriginalFilename: appName + platform.Windows.ExecutableSuffix(),
	}, nil
}

// CreateVersionInfo writes the Windows version resource for cfg into dir and
// returns its path. An existing file is overwritten.
func CreateVersionInfo(cfg config.Values, dir string) (string, error) {
	data, err := NewVersionInfoData(cfg)
	if err != nil {
		return "", fmt.Errorf("creating version info: %w", err)
	}

	path := filepath.Join(dir, VersionInfoFile)
	if err := templates.NewRenderer(data).RenderTo(templates.VersionInfo, path); err != nil {
		return "", fmt.Errorf("creating version info: %w", err)
	}
	return path, nil
}
