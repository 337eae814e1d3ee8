// Package render turns a template name and a context into text.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer renders a named template with the given data.
type Renderer interface {
	Render(name string, data any) (string, error)
}

// Templates is the embedded template set. It is parsed once and safe for
// concurrent use.
type Templates struct {
	set *template.Template
}

// Funcs available to every template.
var Funcs = template.FuncMap{
	"lower":  strings.ToLower,
	"pybool": pyBool,
	"pascal": pascal,
}

// New parses the embedded template set.
func New() (*Templates, error) {
	set, err := template.New("mdgen").
		Funcs(Funcs).
		Option("missingkey=error").
		ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Templates{set: set}, nil
}

// Render executes the template registered under name, for example
// "flask_model.py.tmpl".
func (t *Templates) Render(name string, data any) (string, error) {
	tmpl := t.set.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// Names lists the registered templates.
func (t *Templates) Names() []string {
	var names []string
	for _, tmpl := range t.set.Templates() {
		if strings.HasSuffix(tmpl.Name(), ".tmpl") {
			names = append(names, tmpl.Name())
		}
	}
	return names
}

// pascal upper-cases the first letter: nestedTable becomes NestedTable.
func pascal(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
