package choices

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLocale is the key used for locale-independent text.
const DefaultLocale = "default"

// LocalizedText maps locales to literal strings. It decodes from either a plain
// string (stored under DefaultLocale) or an object keyed by locale.
type LocalizedText map[string]string

// UnmarshalJSON accepts `"Red"` or `{"default": "Red", "de": "Rot"}`.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*t = LocalizedText{DefaultLocale: plain}
		return nil
	}
	var byLocale map[string]string
	if err := json.Unmarshal(data, &byLocale); err != nil {
		return fmt.Errorf("choices: localized text: %w", err)
	}
	*t = LocalizedText(byLocale)
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML documents.
func (t *LocalizedText) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*t = LocalizedText{DefaultLocale: node.Value}
		return nil
	}
	var byLocale map[string]string
	if err := node.Decode(&byLocale); err != nil {
		return fmt.Errorf("choices: localized text: %w", err)
	}
	*t = LocalizedText(byLocale)
	return nil
}

func (t LocalizedText) get(locale string) string {
	if len(t) == 0 {
		return ""
	}
	return strings.TrimSpace(t[locale])
}

// In returns the literal for locale, falling back to the default locale.
func (t LocalizedText) In(locale string) string {
	if text := t.get(locale); text != "" {
		return text
	}
	return t.get(DefaultLocale)
}

func (t LocalizedText) clone() LocalizedText {
	if len(t) == 0 {
		return nil
	}
	out := make(LocalizedText, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// TextOwner identifies the object a LocString belongs to.
type TextOwner interface {
	OwnerType() string
}

// TextKeyer is implemented by owners that map a text property onto a
// translation key.
type TextKeyer interface {
	TextKey(name string) string
}

// TextResolver returns the display string for an owner's text property in the
// given locale. ok is false when the resolver has nothing for it.
type TextResolver interface {
	ResolveText(owner TextOwner, name, locale string) (text string, ok bool)
}

// TextResolverFunc adapts a function into a TextResolver.
type TextResolverFunc func(owner TextOwner, name, locale string) (string, bool)

// ResolveText delegates to the underlying function.
func (fn TextResolverFunc) ResolveText(owner TextOwner, name, locale string) (string, bool) {
	return fn(owner, name, locale)
}

// LocString binds a text property to its owner and name. Nothing is resolved
// until Text is called.
type LocString struct {
	owner    TextOwner
	name     string
	values   LocalizedText
	fallback func() string
}

// Owner returns the object the string belongs to.
func (s LocString) Owner() TextOwner { return s.owner }

// Name returns the property name, e.g. "text".
func (s LocString) Name() string { return s.name }

// Values returns a copy of the literal per-locale values.
func (s LocString) Values() LocalizedText { return s.values.clone() }

// Text resolves the display string: the literal for locale, then the
// resolver, then the default literal, then the owner fallback.
func (s LocString) Text(locale string, resolver TextResolver) string {
	locale = strings.TrimSpace(locale)
	if locale != "" && locale != DefaultLocale {
		if text := s.values.get(locale); text != "" {
			return text
		}
	}
	if resolver != nil && s.owner != nil {
		if text, ok := resolver.ResolveText(s.owner, s.name, locale); ok && strings.TrimSpace(text) != "" {
			return text
		}
	}
	if text := s.values.get(DefaultLocale); text != "" {
		return text
	}
	if s.fallback != nil {
		return s.fallback()
	}
	return ""
}

// Translator resolves a translation key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides the string used when a key cannot be
// translated. Returning "" lets the LocString fall back to its literals.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// NewTranslatorResolver adapts a Translator into a TextResolver. Owners must
// implement TextKeyer for their text to be translated.
func NewTranslatorResolver(t Translator, onMissing MissingTranslationHandler) TextResolver {
	return TextResolverFunc(func(owner TextOwner, name, locale string) (string, bool) {
		keyer, ok := owner.(TextKeyer)
		if !ok {
			return "", false
		}
		key := strings.TrimSpace(keyer.TextKey(name))
		if key == "" {
			return "", false
		}
		if t == nil {
			if onMissing != nil {
				text := onMissing(locale, key, nil, ErrMissingTranslator)
				return text, text != ""
			}
			return "", false
		}
		msg, err := t.Translate(locale, key)
		if err == nil && strings.TrimSpace(msg) != "" {
			return msg, true
		}
		if onMissing != nil {
			text := onMissing(locale, key, nil, err)
			return text, text != ""
		}
		return "", false
	})
}
