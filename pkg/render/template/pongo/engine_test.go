package pongo_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-choicelist/pkg/render/template/pongo"
)

func TestEngine_RenderUsesJSONNames(t *testing.T) {
	t.Parallel()

	type row struct {
		Label   string `json:"label"`
		Checked bool   `json:"checked"`
	}
	files := fstest.MapFS{
		"rows.tpl": {Data: []byte("{% for r in rows %}{% if r.checked %}*{% endif %}{{ r.label }};{% endfor %}")},
	}
	engine, err := pongo.New(files)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	for _, name := range []string{"rows", "rows.tpl"} {
		out, err := engine.Render(name, map[string]any{"rows": []row{{Label: "a"}, {Label: "b", Checked: true}}})
		if err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
		if out != "a;*b;" {
			t.Fatalf("unexpected output %q", out)
		}
	}
}

func TestEngine_FirstLayerWins(t *testing.T) {
	t.Parallel()

	override := fstest.MapFS{"preview.tpl": {Data: []byte("custom {{ title }}")}}
	bundled := fstest.MapFS{
		"preview.tpl": {Data: []byte("bundled {{ title }}")},
		"other.tpl":   {Data: []byte("other {{ title }}")},
	}
	engine, err := pongo.New(override, nil, bundled)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	for name, want := range map[string]string{"preview": "custom Size", "other": "other Size"} {
		out, err := engine.Render(name, map[string]any{"title": "Size"})
		if err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
		if out != want {
			t.Fatalf("render %s = %q, want %q", name, out, want)
		}
	}
}

func TestEngine_Errors(t *testing.T) {
	t.Parallel()

	if _, err := pongo.New(); err == nil {
		t.Fatalf("expected error without template filesystems")
	}
	files := fstest.MapFS{
		"broken.tpl": {Data: []byte("{% if %}")},
		"ok.tpl":     {Data: []byte("ok")},
	}
	engine, err := pongo.New(files)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.Render("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
	if _, err := engine.Render("broken", nil); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := engine.Render(" ", nil); err == nil || !strings.Contains(err.Error(), "empty template name") {
		t.Fatalf("expected empty name error, got %v", err)
	}
	if _, err := engine.Render("ok", map[string]any{"bad": func() {}}); err == nil {
		t.Fatalf("expected error for unencodable data")
	}
}
