package choices

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind distinguishes configured choices from the synthetic ones the engine
// generates.
type Kind int

const (
	KindChoice Kind = iota
	KindSelectAll
	KindNewItem
	KindNone
	KindOther
)

// Reserved values carried by synthetic items.
const (
	ValueSelectAll = "selectall"
	ValueNewItem   = "newitem"
	ValueNone      = "none"
	ValueOther     = "other"
)

func (k Kind) String() string {
	switch k {
	case KindSelectAll:
		return "selectAll"
	case KindNewItem:
		return "newItem"
	case KindNone:
		return "none"
	case KindOther:
		return "other"
	default:
		return "choice"
	}
}

func (k Kind) value() string {
	switch k {
	case KindSelectAll:
		return ValueSelectAll
	case KindNewItem:
		return ValueNewItem
	case KindNone:
		return ValueNone
	case KindOther:
		return ValueOther
	default:
		return ""
	}
}

func (k Kind) textKey() string {
	switch k {
	case KindSelectAll:
		return "selectAllItemText"
	case KindNewItem:
		return "newItemText"
	case KindNone:
		return "noneItemText"
	case KindOther:
		return "otherItemText"
	default:
		return ""
	}
}

func (k Kind) defaultText() string {
	switch k {
	case KindSelectAll:
		return "Select All"
	case KindNewItem:
		return "New Item"
	case KindNone:
		return "None"
	case KindOther:
		return "Other (describe)"
	default:
		return ""
	}
}

// ItemType names the item variant a question type produces.
type ItemType string

const (
	ItemTypeDefault     ItemType = "itemvalue"
	ItemTypeImage       ItemType = "imageitemvalue"
	ItemTypeButtonGroup ItemType = "buttongroupitemvalue"
)

// ItemConfig is the configuration shape of a single choice. It decodes from a
// scalar literal (the value) or from an object.
type ItemConfig struct {
	Value     any           `json:"value" yaml:"value"`
	Text      LocalizedText `json:"text,omitempty" yaml:"text,omitempty"`
	TextKey   string        `json:"textKey,omitempty" yaml:"textKey,omitempty"`
	VisibleIf string        `json:"visibleIf,omitempty" yaml:"visibleIf,omitempty"`
	EnableIf  string        `json:"enableIf,omitempty" yaml:"enableIf,omitempty"`
	Hidden    bool          `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Disabled  bool          `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	ImageLink string        `json:"imageLink,omitempty" yaml:"imageLink,omitempty"`
	Icon      string        `json:"icon,omitempty" yaml:"icon,omitempty"`
}

type itemConfigFields ItemConfig

// UnmarshalJSON accepts `"Red"`, `3` or `{"value": "red", "text": "Red"}`.
func (c *ItemConfig) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var fields itemConfigFields
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return fmt.Errorf("choices: item: %w", err)
		}
		*c = ItemConfig(fields)
		return nil
	}
	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return fmt.Errorf("choices: item: %w", err)
	}
	*c = ItemConfig{Value: value}
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML documents.
func (c *ItemConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var fields itemConfigFields
		if err := node.Decode(&fields); err != nil {
			return fmt.Errorf("choices: item: %w", err)
		}
		*c = ItemConfig(fields)
		return nil
	}
	var value any
	if err := node.Decode(&value); err != nil {
		return fmt.Errorf("choices: item: %w", err)
	}
	*c = ItemConfig{Value: value}
	return nil
}

// Item is one selectable option. Items are created by the engine and never
// mutated after construction; a rebuild replaces them wholesale.
type Item struct {
	value     any
	kind      Kind
	itemType  ItemType
	text      LocString
	textKey   string
	visibleIf string
	enableIf  string
	hidden    bool
	disabled  bool
	imageLink string
	icon      string
}

func newItem(itemType ItemType, kind Kind, cfg ItemConfig) *Item {
	item := &Item{
		value:     cfg.Value,
		kind:      kind,
		itemType:  itemType,
		textKey:   strings.TrimSpace(cfg.TextKey),
		visibleIf: strings.TrimSpace(cfg.VisibleIf),
		enableIf:  strings.TrimSpace(cfg.EnableIf),
		hidden:    cfg.Hidden,
		disabled:  cfg.Disabled,
	}
	if kind != KindChoice {
		item.value = kind.value()
		if item.textKey == "" {
			item.textKey = kind.textKey()
		}
	}
	switch itemType {
	case ItemTypeImage:
		item.imageLink = strings.TrimSpace(cfg.ImageLink)
	case ItemTypeButtonGroup:
		item.icon = sanitizeIconMarkup(cfg.Icon)
	}

	item.text = LocString{
		owner:    item,
		name:     "text",
		values:   cfg.Text.clone(),
		fallback: item.valueString,
	}
	if kind != KindChoice {
		text := kind.defaultText()
		item.text.fallback = func() string { return text }
	}
	return item
}

func (i *Item) valueString() string {
	if i.value == nil {
		return ""
	}
	return fmt.Sprint(i.value)
}

// Value returns the item's value; synthetic items carry their reserved value.
func (i *Item) Value() any { return i.value }

// Kind reports whether the item is a configured choice or a synthetic one.
func (i *Item) Kind() Kind { return i.kind }

// Type reports the item variant, e.g. "imageitemvalue".
func (i *Item) Type() ItemType { return i.itemType }

// OwnerType implements TextOwner.
func (i *Item) OwnerType() string { return string(i.itemType) }

// TextKey implements TextKeyer.
func (i *Item) TextKey(name string) string {
	if name != "text" {
		return ""
	}
	return i.textKey
}

// LocText returns the item's localizable text binding.
func (i *Item) LocText() LocString { return i.text }

// IsSpecial reports whether the item is synthetic.
func (i *Item) IsSpecial() bool { return i.kind != KindChoice }

// VisibleIf returns the configured visibility rule.
func (i *Item) VisibleIf() string { return i.visibleIf }

// EnableIf returns the configured enablement rule.
func (i *Item) EnableIf() string { return i.enableIf }

// ImageLink returns the image URL of image items.
func (i *Item) ImageLink() string { return i.imageLink }

// Icon returns the sanitized SVG markup of button group items.
func (i *Item) Icon() string { return i.icon }

// Config returns the configuration the item was built from.
func (i *Item) Config() ItemConfig {
	cfg := ItemConfig{
		Value:     i.value,
		Text:      i.text.values.clone(),
		TextKey:   i.textKey,
		VisibleIf: i.visibleIf,
		EnableIf:  i.enableIf,
		Hidden:    i.hidden,
		Disabled:  i.disabled,
		ImageLink: i.imageLink,
		Icon:      i.icon,
	}
	return cfg
}

// String returns a short diagnostic form.
func (i *Item) String() string {
	return fmt.Sprintf("%s(%v)", i.kind, i.value)
}
