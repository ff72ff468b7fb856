package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-choicelist/pkg/choices"
	"github.com/goliatone/go-choicelist/pkg/loader"
)

var (
	// ErrSchemaNotFound is returned when a reference does not resolve to a
	// component schema or property.
	ErrSchemaNotFound = errors.New("openapi: schema not found")
	// ErrNoEnum is returned when the referenced schema declares no enum.
	ErrNoEnum = errors.New("openapi: schema has no enum")
)

// Extension keys read for enum labels, in priority order.
var labelExtensions = []string{"x-enum-labels", "x-enumNames"}

// Source exposes the enum schemas of a loaded document.
type Source struct {
	doc *openapi3.T
}

// Load parses an OpenAPI document (JSON or YAML).
func Load(ctx context.Context, data []byte) (*Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	l := &openapi3.Loader{Context: ctx}
	doc, err := l.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return &Source{doc: doc}, nil
}

// Refs lists every schema reference that carries an enum, either directly or
// through array items, in lexical order.
func (s *Source) Refs() []string {
	if s == nil || s.doc == nil || s.doc.Components == nil {
		return nil
	}
	var out []string
	for name, ref := range s.doc.Components.Schemas {
		if ref == nil || ref.Value == nil {
			continue
		}
		if _, ok := enumSchema(ref.Value); ok {
			out = append(out, name)
		}
		for prop, propRef := range ref.Value.Properties {
			if propRef == nil || propRef.Value == nil {
				continue
			}
			if _, ok := enumSchema(propRef.Value); ok {
				out = append(out, name+"."+prop)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Choices returns the enum of ref as item configs.
func (s *Source) Choices(ref string) ([]choices.ItemConfig, error) {
	schema, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	enum, ok := enumSchema(schema)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoEnum, ref)
	}
	labels := enumLabels(enum)
	if len(labels) == 0 {
		labels = enumLabels(schema)
	}

	out := make([]choices.ItemConfig, 0, len(enum.Enum))
	for idx, value := range enum.Enum {
		if value == nil {
			continue
		}
		cfg := choices.ItemConfig{Value: value}
		if idx < len(labels) && labels[idx] != "" {
			cfg.Text = choices.LocalizedText{choices.DefaultLocale: labels[idx]}
		}
		out = append(out, cfg)
	}
	return out, nil
}

// Question derives a question config for ref: arrays of enums become
// checkbox questions, scalar enums radio groups. The schema title or
// description becomes the question title.
func (s *Source) Question(ref string) (loader.QuestionConfig, error) {
	schema, err := s.resolve(ref)
	if err != nil {
		return loader.QuestionConfig{}, err
	}
	items, err := s.Choices(ref)
	if err != nil {
		return loader.QuestionConfig{}, err
	}

	qtype := choices.TypeRadioGroup
	if isArray(schema) {
		qtype = choices.TypeCheckbox
	}
	cfg := loader.QuestionConfig{
		Name:   questionName(ref),
		Type:   qtype,
		Config: choices.Config{Choices: items},
		Source: ref,
	}
	title := strings.TrimSpace(schema.Title)
	if title == "" {
		title = strings.TrimSpace(schema.Description)
	}
	if title != "" {
		cfg.Title = choices.LocalizedText{choices.DefaultLocale: title}
	}
	return cfg, nil
}

// Store derives a question for each ref and collects them in a loader.Store.
func Store(src *Source, refs ...string) (*loader.Store, error) {
	configs := make([]loader.QuestionConfig, 0, len(refs))
	for _, ref := range refs {
		cfg, err := src.Question(ref)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return loader.NewStore("openapi", configs...)
}

func (s *Source) resolve(ref string) (*openapi3.Schema, error) {
	if s == nil || s.doc == nil || s.doc.Components == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, ref)
	}
	name, prop, hasProp := strings.Cut(strings.TrimSpace(ref), ".")
	root := s.doc.Components.Schemas[name]
	if root == nil || root.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, ref)
	}
	if !hasProp {
		return root.Value, nil
	}
	propRef := root.Value.Properties[prop]
	if propRef == nil || propRef.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, ref)
	}
	return propRef.Value, nil
}

// enumSchema returns the schema holding the enum: the schema itself or its
// array items.
func enumSchema(schema *openapi3.Schema) (*openapi3.Schema, bool) {
	if schema == nil {
		return nil, false
	}
	if len(schema.Enum) > 0 {
		return schema, true
	}
	if schema.Items != nil && schema.Items.Value != nil && len(schema.Items.Value.Enum) > 0 {
		return schema.Items.Value, true
	}
	return nil, false
}

func isArray(schema *openapi3.Schema) bool {
	if schema == nil || schema.Type == nil {
		return false
	}
	for _, typ := range schema.Type.Slice() {
		if typ == openapi3.TypeArray {
			return true
		}
	}
	return false
}

func enumLabels(schema *openapi3.Schema) []string {
	if schema == nil || len(schema.Extensions) == 0 {
		return nil
	}
	for _, key := range labelExtensions {
		raw, ok := schema.Extensions[key]
		if !ok {
			continue
		}
		if labels := stringList(raw); len(labels) > 0 {
			return labels
		}
	}
	return nil
}

func stringList(raw any) []string {
	switch typed := raw.(type) {
	case json.RawMessage:
		var decoded []any
		if err := json.Unmarshal(typed, &decoded); err != nil {
			return nil
		}
		return stringList(decoded)
	case []string:
		return append([]string(nil), typed...)
	case []any:
		out := make([]string, len(typed))
		for idx, value := range typed {
			if text, ok := value.(string); ok {
				out[idx] = strings.TrimSpace(text)
			}
		}
		return out
	default:
		return nil
	}
}

func questionName(ref string) string {
	name := strings.TrimSpace(ref)
	if _, prop, ok := strings.Cut(name, "."); ok {
		return prop
	}
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
