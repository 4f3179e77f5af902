package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appbuild/cli/internal/config"
	"github.com/appbuild/cli/internal/platform"
)

func TestConfigDigest(t *testing.T) {
	a := config.Values{"app_name": "MyApp", "hidden_imports": []any{"a", "b"}, "company": map[string]any{"name": "Acme"}}
	b := config.Values{"company": map[string]any{"name": "Acme"}, "hidden_imports": []any{"a", "b"}, "app_name": "MyApp"}

	da, err := ConfigDigest(a)
	require.NoError(t, err)
	db, err := ConfigDigest(b)
	require.NoError(t, err)

	assert.Equal(t, da, db)
	assert.True(t, strings.HasPrefix(da, "sha256:"))
	assert.Len(t, da, len("sha256:")+64)

	reordered := config.Values{"app_name": "MyApp", "hidden_imports": []any{"b", "a"}, "company": map[string]any{"name": "Acme"}}
	dr, err := ConfigDigest(reordered)
	require.NoError(t, err)
	assert.NotEqual(t, da, dr, "list order is significant")
}

func TestConfigID(t *testing.T) {
	values := config.Defaults(platform.Linux)

	first, err := ConfigID(values, platform.Linux)
	require.NoError(t, err)
	second, err := ConfigID(config.Defaults(platform.Linux), platform.Linux)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := ConfigID(values, platform.Windows)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	assert.Equal(t, "5", first[14:15], "UUID version 5")
}

func TestConfigDigest_Unserializable(t *testing.T) {
	_, err := ConfigDigest(config.Values{"bad": func() {}})
	assert.Error(t, err)
}
