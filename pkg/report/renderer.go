// Package report renders enforcement results into operator-readable text.
// Templates are embedded so the renderer works without any on-disk assets.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"io"

	"github.com/flosch/pongo2/v6"

	"github.com/hiveos/go-canonical/pkg/contract"
	"github.com/hiveos/go-canonical/pkg/enforcer"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

// Renderer formats enforcement results from the embedded template set. A
// Renderer is immutable after construction and safe for concurrent use.
type Renderer struct {
	tmpl *pongo2.Template
}

// NewRenderer parses the embedded report template.
func NewRenderer() (*Renderer, error) {
	set := pongo2.NewSet("canonical-report", pongo2.NewFSLoader(templatesFS))
	tmpl, err := set.FromFile("templates/report.tpl")
	if err != nil {
		return nil, fmt.Errorf("report: parse template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render produces the report text for one enforcement run, optionally
// copying it to the supplied writers.
func (r *Renderer) Render(spec contract.EntitySpec, result enforcer.Result, out ...io.Writer) (string, error) {
	if r == nil || r.tmpl == nil {
		return "", fmt.Errorf("report: renderer is not initialised")
	}

	var buf bytes.Buffer
	err := r.tmpl.ExecuteWriter(pongo2.Context{
		"entity": spec,
		"result": result,
	}, &buf)
	if err != nil {
		return "", fmt.Errorf("report: execute template: %w", err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := w.Write([]byte(rendered)); err != nil {
			return "", fmt.Errorf("report: write output: %w", err)
		}
	}
	return rendered, nil
}
