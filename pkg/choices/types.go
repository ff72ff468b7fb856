package choices

import (
	"sort"
	"strings"
	"sync"
)

// QuestionType names a select-type question.
type QuestionType string

// Built-in question types.
const (
	TypeSelectBase  QuestionType = "selectbase"
	TypeCheckbox    QuestionType = "checkbox"
	TypeRadioGroup  QuestionType = "radiogroup"
	TypeDropdown    QuestionType = "dropdown"
	TypeImagePicker QuestionType = "imagepicker"
	TypeButtonGroup QuestionType = "buttongroup"
)

// Capabilities describes what a question type supports.
type Capabilities struct {
	// MultiSelect questions keep an ordered list of values.
	MultiSelect bool
	// ItemType is the variant created for the type's choices.
	ItemType ItemType
	// SelectAll, None and Other report which synthetic items the type can show.
	SelectAll bool
	None      bool
	Other     bool
	// SeparateSpecialChoicesVisible reports whether separateSpecialChoices is
	// exposed as an editable property for this type.
	SeparateSpecialChoicesVisible bool
}

func (c Capabilities) supports(kind Kind) bool {
	switch kind {
	case KindSelectAll:
		return c.SelectAll && c.MultiSelect
	case KindNone:
		return c.None
	case KindOther:
		return c.Other
	case KindNewItem:
		return true
	default:
		return true
	}
}

// Registry maps question types to their capabilities. Registrations replace
// earlier entries for the same name.
type Registry struct {
	mu    sync.RWMutex
	types map[QuestionType]Capabilities
}

// NewRegistry constructs a registry with the built-in question types.
func NewRegistry() *Registry {
	reg := &Registry{types: make(map[QuestionType]Capabilities)}
	reg.registerBuiltins()
	return reg
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used when a question is
// created without WithRegistry.
func DefaultRegistry() *Registry { return defaultRegistry }

func (r *Registry) registerBuiltins() {
	r.Register(TypeSelectBase, Capabilities{ItemType: ItemTypeDefault, None: true, Other: true})
	r.Register(TypeCheckbox, Capabilities{
		MultiSelect:                   true,
		ItemType:                      ItemTypeDefault,
		SelectAll:                     true,
		None:                          true,
		Other:                         true,
		SeparateSpecialChoicesVisible: true,
	})
	r.Register(TypeRadioGroup, Capabilities{
		ItemType:                      ItemTypeDefault,
		None:                          true,
		Other:                         true,
		SeparateSpecialChoicesVisible: true,
	})
	r.Register(TypeDropdown, Capabilities{ItemType: ItemTypeDefault, None: true, Other: true})
	r.Register(TypeImagePicker, Capabilities{ItemType: ItemTypeImage})
	r.Register(TypeButtonGroup, Capabilities{ItemType: ItemTypeButtonGroup})
}

// Register adds or replaces a question type. Empty names are ignored and a
// missing ItemType defaults to ItemTypeDefault.
func (r *Registry) Register(name QuestionType, caps Capabilities) {
	if r == nil {
		return
	}
	trimmed := QuestionType(strings.TrimSpace(string(name)))
	if trimmed == "" {
		return
	}
	if caps.ItemType == "" {
		caps.ItemType = ItemTypeDefault
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[trimmed] = caps
}

// Lookup returns the capabilities registered for name.
func (r *Registry) Lookup(name QuestionType) (Capabilities, bool) {
	if r == nil {
		return Capabilities{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	caps, ok := r.types[QuestionType(strings.TrimSpace(string(name)))]
	return caps, ok
}

// Types lists the registered type names in lexical order.
func (r *Registry) Types() []QuestionType {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	out := make([]QuestionType, 0, len(r.types))
	for name := range r.types {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
