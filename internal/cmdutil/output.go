package cmdutil

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/appbuild/cli/internal/build"
	"github.com/appbuild/cli/internal/config"
	"github.com/appbuild/cli/internal/output"
)

// WriteBuildResult logs one line per artifact and prints the summary line.
// In verbose mode the artifacts are also printed as a tree relative to the
// build's working directory.
func WriteBuildResult(w io.Writer, logger *log.Logger, res *build.Result, verbose bool) {
	appLog := output.AppLogger(logger, res.AppName)
	for _, a := range res.Artifacts {
		appLog.Info(output.FormatArtifactLine(a.Path, a.Status))
	}
	logger.Debug("build finished", "id", res.ID, "config_id", res.ConfigID, "duration", res.Duration)

	if verbose && len(res.Artifacts) > 0 {
		fmt.Fprint(w, output.RenderArtifactTree(rootName(res.WorkDir), artifactEntries(res)))
	}
	fmt.Fprintln(w, output.FormatBuildSummary(res.AppName, res.Platform.String(), res.Signed))
}

// WriteValues renders resolved configuration values in the given format.
// The table format lists one key per row in sorted order.
func WriteValues(w io.Writer, values config.Values, format output.Format) error {
	if format != output.FormatTable {
		return output.WriteDocument(w, map[string]any(values), format)
	}

	tbl := output.NewValueTable()
	for _, key := range values.Keys() {
		tbl.Row(key, FormatValue(values[key]))
	}
	_, err := fmt.Fprintln(w, tbl.String())
	return err
}

// FormatValue renders a single configuration value for table output.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case []any:
		if len(val) == 0 {
			return "[]"
		}
	case map[string]any:
		if len(val) == 0 {
			return "{}"
		}
	}
	return fmt.Sprint(v)
}

// artifactEntries maps artifact paths relative to the working directory to
// their status. Later entries for the same path win.
func artifactEntries(res *build.Result) map[string]string {
	root := res.WorkDir
	if root == "" {
		root = "."
	}

	entries := make(map[string]string, len(res.Artifacts))
	for _, a := range res.Artifacts {
		rel, err := filepath.Rel(root, a.Path)
		if err != nil {
			rel = a.Path
		}
		entries[rel] = a.Status
	}
	return entries
}

func rootName(workDir string) string {
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "."
	}
	return filepath.Base(abs)
}
