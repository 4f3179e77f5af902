package artifacts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appbuild/cli/internal/config"
	oerrors "github.com/appbuild/cli/internal/errors"
)

func TestNewVersionInfoData_Defaults(t *testing.T) {
	data, err := NewVersionInfoData(config.Values{
		config.KeyAppName: "MyApp",
		config.KeyVersion: "1.2",
	})
	require.NoError(t, err)

	assert.Equal(t, "1,2,0,0", data.VersionTuple)
	assert.Equal(t, "1.2", data.Version)
	assert.Equal(t, "Unknown Company", data.CompanyName)
	assert.Equal(t, "Copyright (c) Unknown Company", data.Copyright)
	assert.Equal(t, "MyApp", data.Description)
	assert.Equal(t, "MyApp", data.ProductName)
	assert.Equal(t, "Unknown Company", data.Trademark)
	assert.Equal(t, "MyApp", data.InternalName)
	assert.Equal(t, "MyApp.exe", data.OriginalFilename)
}

func TestNewVersionInfoData_Company(t *testing.T) {
	data, err := NewVersionInfoData(config.Values{
		config.KeyAppName: "MyApp",
		config.KeyVersion: "3.1.4.1",
		config.KeyCompany: map[string]any{
			"name":         "Acme",
			"description":  "Acme desktop client",
			"product_name": "Acme Suite",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme", data.CompanyName)
	assert.Equal(t, "Copyright (c) Acme", data.Copyright)
	assert.Equal(t, "Acme desktop client", data.Description)
	assert.Equal(t, "Acme Suite", data.ProductName)
	assert.Equal(t, "Acme", data.Trademark)
	assert.Equal(t, "3,1,4,1", data.VersionTuple)
}

func TestCreateVersionInfo(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateVersionInfo(config.Values{
		config.KeyAppName: "MyApp",
		config.KeyVersion: "1.2",
	}, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, VersionInfoFile), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "filevers=(1,2,0,0)")
	assert.Contains(t, text, "prodvers=(1,2,0,0)")
	assert.Contains(t, text, "u'CompanyName', u'Unknown Company'")
	assert.Contains(t, text, "u'FileVersion', u'1.2'")
	assert.Contains(t, text, "u'OriginalFilename', u'MyApp.exe'")
}

func TestCreateVersionInfo_Overwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, VersionInfoFile), []byte("stale"), 0o644))

	path, err := CreateVersionInfo(config.Values{config.KeyAppName: "A", config.KeyVersion: "2"}, dir)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "stale")
}

func TestCreateVersionInfo_BadVersion(t *testing.T) {
	dir := t.TempDir()

	_, err := CreateVersionInfo(config.Values{
		config.KeyAppName: "MyApp",
		config.KeyVersion: "1.2.3.4.5",
	}, dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrVersionFormat))
	assert.NoFileExists(t, filepath.Join(dir, VersionInfoFile))
}
