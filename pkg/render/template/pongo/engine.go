package pongo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-choicelist/pkg/render/template"
)

// Extension is appended to template names.
const Extension = ".tpl"

// Engine renders pongo2 templates looked up across a stack of filesystems.
// The first filesystem holding a template wins, so overrides go first.
// Compiled templates are cached by name.
type Engine struct {
	set *pongo2.TemplateSet

	mu    sync.Mutex
	cache map[string]*pongo2.Template
}

var _ template.Engine = (*Engine)(nil)

// New builds an engine over layers. Nil layers are skipped; at least one is
// required.
func New(layers ...fs.FS) (*Engine, error) {
	var loaders []pongo2.TemplateLoader
	for _, layer := range layers {
		if layer != nil {
			loaders = append(loaders, pongo2.NewFSLoader(layer))
		}
	}
	if len(loaders) == 0 {
		return nil, errors.New("pongo: no template filesystem")
	}
	return &Engine{
		set:   pongo2.NewSet("choicelist", loaders...),
		cache: make(map[string]*pongo2.Template),
	}, nil
}

// Render executes the named template. Values in data are flattened through
// encoding/json first, so templates address struct fields by their JSON names.
func (e *Engine) Render(name string, data map[string]any) (string, error) {
	tmpl, err := e.template(strings.TrimSuffix(strings.TrimSpace(name), Extension))
	if err != nil {
		return "", err
	}
	ctx, err := contextOf(data)
	if err != nil {
		return "", fmt.Errorf("pongo: %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("pongo: execute %s: %w", name, err)
	}
	return buf.String(), nil
}

func (e *Engine) template(name string) (*pongo2.Template, error) {
	if name == "" {
		return nil, errors.New("pongo: empty template name")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.cache[name]; ok {
		return tmpl, nil
	}
	tmpl, err := e.set.FromFile(name + Extension)
	if err != nil {
		return nil, fmt.Errorf("pongo: load %s: %w", name, err)
	}
	e.cache[name] = tmpl
	return tmpl, nil
}

func contextOf(data map[string]any) (pongo2.Context, error) {
	ctx := make(pongo2.Context, len(data))
	for key, value := range data {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		var plain any
		if err := json.Unmarshal(raw, &plain); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		ctx[key] = plain
	}
	return ctx, nil
}
