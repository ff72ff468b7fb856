package choices

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ItemClasses lists the CSS class tokens composed by Question.ItemClass.
type ItemClasses struct {
	Item          string
	ItemChecked   string
	ItemDisabled  string
	ItemHover     string
	ItemSelectAll string
	ItemNone      string
	ItemOther     string
	ItemNewItem   string
}

// Theme token keys read by ClassesFromTheme.
const (
	TokenItem          = "choices.item"
	TokenItemChecked   = "choices.item.checked"
	TokenItemDisabled  = "choices.item.disabled"
	TokenItemHover     = "choices.item.hover"
	TokenItemSelectAll = "choices.item.selectAll"
	TokenItemNone      = "choices.item.none"
	TokenItemOther     = "choices.item.other"
	TokenItemNewItem   = "choices.item.newItem"
)

// DefaultItemClasses returns the built-in class tokens.
func DefaultItemClasses() ItemClasses {
	return ItemClasses{
		Item:          "choice-item",
		ItemChecked:   "choice-item--checked",
		ItemDisabled:  "choice-item--disabled",
		ItemHover:     "choice-item--allowhover",
		ItemSelectAll: "choice-item--selectall",
		ItemNone:      "choice-item--none",
		ItemOther:     "choice-item--other",
		ItemNewItem:   "choice-item--newitem",
	}
}

// ClassesFromTheme overlays the choices.* tokens of a resolved go-theme
// configuration on top of DefaultItemClasses. A token set to "-" disables the
// class entirely.
func ClassesFromTheme(cfg *theme.RendererConfig) ItemClasses {
	classes := DefaultItemClasses()
	if cfg == nil || len(cfg.Tokens) == 0 {
		return classes
	}
	apply := func(target *string, key string) {
		value, ok := cfg.Tokens[key]
		if !ok {
			return
		}
		value = strings.TrimSpace(value)
		if value == "-" {
			*target = ""
			return
		}
		if value != "" {
			*target = value
		}
	}
	apply(&classes.Item, TokenItem)
	apply(&classes.ItemChecked, TokenItemChecked)
	apply(&classes.ItemDisabled, TokenItemDisabled)
	apply(&classes.ItemHover, TokenItemHover)
	apply(&classes.ItemSelectAll, TokenItemSelectAll)
	apply(&classes.ItemNone, TokenItemNone)
	apply(&classes.ItemOther, TokenItemOther)
	apply(&classes.ItemNewItem, TokenItemNewItem)
	return classes
}

func (c ItemClasses) kindClass(kind Kind) string {
	switch kind {
	case KindSelectAll:
		return c.ItemSelectAll
	case KindNone:
		return c.ItemNone
	case KindOther:
		return c.ItemOther
	case KindNewItem:
		return c.ItemNewItem
	default:
		return ""
	}
}

func joinClasses(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, class := range classes {
		if trimmed := strings.TrimSpace(class); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}
