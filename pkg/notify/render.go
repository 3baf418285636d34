// Package notify renders the member-facing templates and delivers the
// welcome mail through the SMTP relay.
package notify

import (
	"fmt"
	"path/filepath"

	"github.com/cbroglie/mustache"
)

// Template file names, relative to the configured template directory.
const (
	WelcomeTemplate = "email.mu"
	FormTemplate    = "web.mu"
)

// TemplateError reports a template that could not be read or rendered.
type TemplateError struct {
	Name string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %v", e.Name, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// Renderer substitutes a flat field mapping into mustache template files.
// Substituted values are HTML-escaped; fields mentioned in a template but
// absent from the mapping render empty.
type Renderer struct {
	dir string
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

func (r *Renderer) Render(name string, fields map[string]string) (string, error) {
	out, err := mustache.RenderFile(filepath.Join(r.dir, name), fields)
	if err != nil {
		return "", &TemplateError{Name: name, Err: err}
	}
	return out, nil
}
