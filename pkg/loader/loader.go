package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-choicelist/pkg/choices"
)

var (
	// ErrDuplicateQuestion is returned when two documents define the same
	// question name.
	ErrDuplicateQuestion = errors.New("loader: duplicate question")
	// ErrConflictingDefaults is returned when documents disagree on a default.
	ErrConflictingDefaults = errors.New("loader: conflicting defaults")
)

// QuestionConfig is one question entry of a document. The choices.Config
// fields sit inline next to name and type.
type QuestionConfig struct {
	Name           string                `json:"name" yaml:"name"`
	Type           choices.QuestionType  `json:"type" yaml:"type"`
	Title          choices.LocalizedText `json:"title,omitempty" yaml:"title,omitempty"`
	choices.Config `yaml:",inline"`

	// Source is the document path the question was read from.
	Source string `json:"-" yaml:"-"`
}

// Defaults are document-wide settings.
type Defaults struct {
	ItemsOrder choices.Order `json:"itemsOrder,omitempty" yaml:"itemsOrder,omitempty"`
}

type documentFile struct {
	Defaults  Defaults         `json:"defaults" yaml:"defaults"`
	Questions []QuestionConfig `json:"questions" yaml:"questions"`
}

// Store holds the questions read from one or more documents in load order.
type Store struct {
	questions []QuestionConfig
	index     map[string]int
	order     choices.Order
}

// LoadFS walks fsys and parses every JSON/YAML document in lexical path
// order. A nil filesystem yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{index: make(map[string]int)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDocumentFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("loader: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		return store.add(doc, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Parse reads a single document.
func Parse(data []byte, source string) (*Store, error) {
	store := &Store{index: make(map[string]int)}
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}
	if err := store.add(doc, source); err != nil {
		return nil, err
	}
	return store, nil
}

// NewStore collects question configs built in code, such as those derived
// from an OpenAPI document. The same validation as for documents applies.
func NewStore(source string, questions ...QuestionConfig) (*Store, error) {
	store := &Store{index: make(map[string]int)}
	if err := store.add(documentFile{Questions: questions}, source); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) add(doc documentFile, source string) error {
	if raw := strings.TrimSpace(string(doc.Defaults.ItemsOrder)); raw != "" {
		order, ok := choices.ParseOrder(raw)
		if !ok {
			return fmt.Errorf("loader: file %s: unknown itemsOrder %q", source, raw)
		}
		if s.order != "" && s.order != order {
			return fmt.Errorf("%w: itemsOrder %q vs %q (file %s)", ErrConflictingDefaults, s.order, order, source)
		}
		s.order = order
	}

	for idx, question := range doc.Questions {
		name := strings.TrimSpace(question.Name)
		if name == "" {
			return fmt.Errorf("loader: file %s question %d has no name", source, idx)
		}
		if strings.TrimSpace(string(question.Type)) == "" {
			return fmt.Errorf("loader: file %s question %q has no type", source, name)
		}
		if _, exists := s.index[name]; exists {
			return fmt.Errorf("%w: %q (file %s)", ErrDuplicateQuestion, name, source)
		}
		if raw := strings.TrimSpace(string(question.Order)); raw != "" {
			order, ok := choices.ParseOrder(raw)
			if !ok {
				return fmt.Errorf("loader: file %s question %q: unknown itemsOrder %q", source, name, raw)
			}
			question.Order = order
		}
		question.Name = name
		question.Source = source
		s.index[name] = len(s.questions)
		s.questions = append(s.questions, question)
	}
	return nil
}

// Questions returns the loaded question configs in load order.
func (s *Store) Questions() []QuestionConfig {
	if s == nil {
		return nil
	}
	return append([]QuestionConfig(nil), s.questions...)
}

// Question returns the config for name.
func (s *Store) Question(name string) (QuestionConfig, bool) {
	if s == nil {
		return QuestionConfig{}, false
	}
	idx, ok := s.index[strings.TrimSpace(name)]
	if !ok {
		return QuestionConfig{}, false
	}
	return s.questions[idx], true
}

// DefaultOrder reports the document-wide item order, if any.
func (s *Store) DefaultOrder() (choices.Order, bool) {
	if s == nil || s.order == "" {
		return "", false
	}
	return s.order, true
}

// Empty reports whether the store holds any questions.
func (s *Store) Empty() bool {
	return s == nil || len(s.questions) == 0
}

// Build creates a question per loaded config. When the documents declare a
// default item order the questions share a Settings carrying it; an explicit
// choices.WithSettings in opts takes precedence.
func (s *Store) Build(opts ...choices.Option) ([]*choices.Question, error) {
	if s == nil {
		return nil, nil
	}
	base := make([]choices.Option, 0, len(opts)+1)
	if order, ok := s.DefaultOrder(); ok {
		base = append(base, choices.WithSettings(choices.NewSettings(order)))
	}
	base = append(base, opts...)

	out := make([]*choices.Question, 0, len(s.questions))
	for _, cfg := range s.questions {
		q, err := choices.NewQuestion(cfg.Name, cfg.Type, cfg.Config, base...)
		if err != nil {
			return nil, fmt.Errorf("loader: question %q (file %s): %w", cfg.Name, cfg.Source, err)
		}
		out = append(out, q)
	}
	return out, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("loader: file %s is empty", source)
	}

	if isJSONFile(source) {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("loader: parse %s: %w", source, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("loader: parse %s: %w", source, err)
	}
	return doc, nil
}

func isJSONFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
