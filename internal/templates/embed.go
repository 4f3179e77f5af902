package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed files/*.tmpl
var templateFS embed.FS

const templateRoot = "files"

// readTemplate returns the raw content of an embedded template.
func readTemplate(t Template) ([]byte, error) {
	content, err := fs.ReadFile(templateFS, templateRoot+"/"+t.File)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", t.File, err)
	}
	return content, nil
}

// ListTemplateFiles returns the embedded template files with the .tmpl
// extension removed.
func ListTemplateFiles() ([]string, error) {
	entries, err := fs.ReadDir(templateFS, templateRoot)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, strings.TrimSuffix(e.Name(), ".tmpl"))
	}
	sort.Strings(files)
	return files, nil
}
