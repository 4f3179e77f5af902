package cmdutil

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appbuild/cli/internal/build"
	"github.com/appbuild/cli/internal/cmdtypes"
	"github.com/appbuild/cli/internal/config"
	oerrors "github.com/appbuild/cli/internal/errors"
	"github.com/appbuild/cli/internal/output"
	"github.com/appbuild/cli/internal/platform"
)

func TestWriteValues_Table(t *testing.T) {
	var buf bytes.Buffer
	values := config.Values{"app_name": "MyApp", "hidden_imports": []any{}, "console": true}

	require.NoError(t, WriteValues(&buf, values, output.FormatTable))

	out := buf.String()
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "app_name")
	assert.Contains(t, out, "MyApp")
	assert.Contains(t, out, "[]")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("app_name")), bytes.Index(buf.Bytes(), []byte("console")))
}

func TestWriteValues_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteValues(&buf, config.Values{"app_name": "MyApp"}, output.FormatJSON))
	assert.Contains(t, buf.String(), `"app_name": "MyApp"`)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "-", FormatValue(nil))
	assert.Equal(t, "[]", FormatValue([]any{}))
	assert.Equal(t, "{}", FormatValue(map[string]any{}))
	assert.Equal(t, "[a b]", FormatValue([]any{"a", "b"}))
	assert.Equal(t, "true", FormatValue(true))
}

func TestWriteBuildResult(t *testing.T) {
	var stdout, logs bytes.Buffer
	signed := true
	res := &build.Result{
		AppName:  "MyApp",
		Platform: platform.MacOS,
		Signed:   &signed,
		Artifacts: []build.Artifact{
			{Path: "dist/MyApp.app", Status: output.StatusSigned},
		},
	}

	WriteBuildResult(&stdout, output.NewLogger(output.LogConfig{Writer: &logs}), res, false)

	assert.Contains(t, stdout.String(), "MyApp")
	assert.Contains(t, stdout.String(), "macos")
	assert.Contains(t, stdout.String(), "signed")
	assert.Contains(t, logs.String(), "dist/MyApp.app")
}

func TestResolveValues(t *testing.T) {
	gc := &cmdtypes.GlobalConfig{
		ConfigPath: config.ResolvedPath{Path: filepath.Join(t.TempDir(), "absent.json")},
		Host:       platform.Linux,
		Log:        output.Discard(),
	}

	values, source, err := ResolveValues(gc, platform.Windows)
	require.NoError(t, err)
	assert.Equal(t, config.SourceDefault, source)
	assert.Equal(t, config.Defaults(platform.Windows), values)

	doc, source, err := LoadDocument(gc)
	require.NoError(t, err)
	assert.Equal(t, config.SourceDefault, source)
	assert.Len(t, doc.Platforms, 3)
}

func TestWrapConfigError(t *testing.T) {
	err := WrapConfigError(oerrors.NewParseError("x.json", errors.New("bad")))

	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, oerrors.ExitGeneralError, exitErr.Code)

	already := oerrors.NewExitError(errors.New("boom"), 7)
	assert.Same(t, already, WrapConfigError(already))
}

func TestWriteBuildResult_VerboseTree(t *testing.T) {
	var stdout bytes.Buffer
	work := t.TempDir()
	res := &build.Result{
		AppName:  "Foo",
		Platform: platform.Linux,
		WorkDir:  work,
		Artifacts: []build.Artifact{
			{Path: filepath.Join(work, "build", "Foo.desktop"), Status: output.StatusGenerated},
			{Path: filepath.Join(work, "dist", "Foo.desktop"), Status: output.StatusCopied},
		},
	}

	WriteBuildResult(&stdout, output.Discard(), res, true)

	out := stdout.String()
	assert.Contains(t, out, filepath.Base(work)+"/")
	assert.Contains(t, out, "build/")
	assert.Contains(t, out, "dist/")
	assert.Contains(t, out, output.StatusCopied)
}
