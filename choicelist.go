// Package choicelist is the top-level entry point for the choice-list engine.
// It re-exports the common types from pkg/choices and wires the loader and the
// preview renderers together for callers that just want a layout on screen.
package choicelist

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-choicelist/pkg/choices"
	"github.com/goliatone/go-choicelist/pkg/loader"
	"github.com/goliatone/go-choicelist/pkg/render"
)

// Question aliases choices.Question.
type Question = choices.Question

// Config aliases choices.Config.
type Config = choices.Config

// ItemConfig aliases choices.ItemConfig.
type ItemConfig = choices.ItemConfig

// NewQuestion builds a question; see choices.NewQuestion.
func NewQuestion(name string, qtype choices.QuestionType, cfg Config, options ...choices.Option) (*Question, error) {
	return choices.NewQuestion(name, qtype, cfg, options...)
}

// LoadFS reads every question document in fsys and builds the questions in
// load order.
func LoadFS(fsys fs.FS, options ...choices.Option) ([]*Question, error) {
	store, err := loader.LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	return store.Build(options...)
}

// LoadDocument parses a single JSON or YAML document. source names the
// document in errors and selects the format by extension.
func LoadDocument(data []byte, source string, options ...choices.Option) ([]*Question, error) {
	store, err := loader.Parse(data, source)
	if err != nil {
		return nil, err
	}
	return store.Build(options...)
}

// Preview renders q with the named renderer from the default registry
// ("text", "styled" or "json").
func Preview(ctx context.Context, q *Question, rendererName string, viewOptions ...render.ViewOption) ([]byte, error) {
	registry, err := render.NewDefaultRegistry()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	out, err := renderer.Render(ctx, render.BuildView(q, viewOptions...))
	if err != nil {
		return nil, fmt.Errorf("choicelist: preview %s: %w", q.Name(), err)
	}
	return out, nil
}

// EmbeddedTemplates exposes the preview templates so callers can copy or
// extend them without importing the render package directly.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}

// SampleQuestions exposes the bundled example documents.
func SampleQuestions() fs.FS {
	return loader.SampleFS()
}
