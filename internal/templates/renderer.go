package templates

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// funcs are available to every template.
var funcs = template.FuncMap{
	// quote escapes a value for a single-quoted Python string literal.
	"quote": func(s string) string {
		s = strings.ReplaceAll(s, `\`, `\\`)
		return strings.ReplaceAll(s, `'`, `\'`)
	},
}

// Renderer handles template rendering with data substitution.
type Renderer struct {
	data any
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data any) *Renderer {
	return &Renderer{data: data}
}

// RenderFile renders a single template file and returns the content.
func (r *Renderer) RenderFile(content []byte) ([]byte, error) {
	tmpl, err := template.New("file").Funcs(funcs).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// Render renders the named embedded template.
func (r *Renderer) Render(name Name) ([]byte, error) {
	t, err := Get(name)
	if err != nil {
		return nil, err
	}

	content, err := readTemplate(t)
	if err != nil {
		return nil, err
	}

	rendered, err := r.RenderFile(content)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", t.File, err)
	}
	return rendered, nil
}

// RenderTo renders the named template into targetPath, creating the parent
// directory and overwriting any existing file.
func (r *Renderer) RenderTo(name Name, targetPath string) error {
	rendered, err := r.Render(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", targetPath, err)
	}

	if err := os.WriteFile(targetPath, rendered, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", targetPath, err)
	}
	return nil
}
