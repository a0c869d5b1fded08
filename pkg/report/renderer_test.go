package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hiveos/go-canonical/pkg/enforcer"
	"github.com/hiveos/go-canonical/pkg/registry"
	"github.com/hiveos/go-canonical/pkg/report"
)

func TestRenderInvalidResult(t *testing.T) {
	renderer, err := report.NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	spec, ok := registry.Default().Get("brand")
	if !ok {
		t.Fatal("brand spec missing")
	}

	result := enforcer.Result{
		Canonical:         map[string]any{},
		SynthesizedFields: []string{"valueProp.headline"},
		NullFields:        []string{"positioning.statement"},
		Valid:             false,
		Errors:            []string{"Positioning Statement (positioning.statement) could not be synthesized from any source"},
	}

	var buf bytes.Buffer
	out, err := renderer.Render(spec, result, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != buf.String() {
		t.Fatal("writer output differs from returned string")
	}

	for _, fragment := range []string{
		"Brand Lab",
		"INVALID",
		"brand_foundation",
		"valueProp.headline",
		"positioning.statement",
		"could not be synthesized",
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("report missing %q:\n%s", fragment, out)
		}
	}
}

func TestRenderValidResult(t *testing.T) {
	renderer, err := report.NewRenderer()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	spec, _ := registry.Default().Get("seo")
	result := enforcer.Result{
		Canonical: map[string]any{"technicalAudit": map[string]any{"summary": "All crawl budgets accounted for."}},
		Valid:     true,
	}

	out, err := renderer.Render(spec, result)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "VALID") {
		t.Fatalf("report missing status:\n%s", out)
	}
	if strings.Contains(out, "Errors:") {
		t.Fatalf("valid report should not list errors:\n%s", out)
	}
}
