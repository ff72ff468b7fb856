package render

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-choicelist/pkg/render/template"
	"github.com/goliatone/go-choicelist/pkg/render/template/pongo"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// DefaultTemplate is the template the text renderer executes.
const DefaultTemplate = "preview"

// TemplatesFS returns the bundled templates.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// TextOption configures the text renderer.
type TextOption func(*textConfig)

type textConfig struct {
	engine    template.Engine
	overrides fs.FS
	template  string
}

// WithEngine swaps the template engine.
func WithEngine(engine template.Engine) TextOption {
	return func(cfg *textConfig) {
		cfg.engine = engine
	}
}

// WithTemplateFS searches files before the bundled templates, so a
// "preview.tpl" in files replaces the default.
func WithTemplateFS(files fs.FS) TextOption {
	return func(cfg *textConfig) {
		cfg.overrides = files
	}
}

// WithTemplate selects the template to execute.
func WithTemplate(name string) TextOption {
	return func(cfg *textConfig) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.template = trimmed
		}
	}
}

// TextRenderer draws a plain text preview of a View.
type TextRenderer struct {
	engine   template.Engine
	template string
}

var _ Renderer = (*TextRenderer)(nil)

// NewTextRenderer builds the text renderer on a pongo2 engine unless
// WithEngine supplies another one.
func NewTextRenderer(opts ...TextOption) (*TextRenderer, error) {
	cfg := textConfig{template: DefaultTemplate}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.engine == nil {
		engine, err := pongo.New(cfg.overrides, TemplatesFS())
		if err != nil {
			return nil, fmt.Errorf("render: text engine: %w", err)
		}
		cfg.engine = engine
	}
	return &TextRenderer{engine: cfg.engine, template: cfg.template}, nil
}

// Name implements Renderer.
func (r *TextRenderer) Name() string { return "text" }

// ContentType implements Renderer.
func (r *TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render implements Renderer.
func (r *TextRenderer) Render(ctx context.Context, view View) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := r.engine.Render(r.template, map[string]any{"view": view})
	if err != nil {
		return nil, fmt.Errorf("render: text: %w", err)
	}
	return []byte(out), nil
}
