package choices

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-choicelist/pkg/visibility"
)

// SortOrder sorts the visible configured choices by their display text.
type SortOrder string

const (
	SortNone SortOrder = "none"
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Config is the configuration source of a question.
type Config struct {
	Choices                []ItemConfig  `json:"choices,omitempty" yaml:"choices,omitempty"`
	ChoicesByURL           *ChoicesByURL `json:"choicesByUrl,omitempty" yaml:"choicesByUrl,omitempty"`
	ColCount               int           `json:"colCount,omitempty" yaml:"colCount,omitempty"`
	Order                  Order         `json:"itemsOrder,omitempty" yaml:"itemsOrder,omitempty"`
	ChoicesOrder           SortOrder     `json:"choicesOrder,omitempty" yaml:"choicesOrder,omitempty"`
	HasOther               bool          `json:"hasOther,omitempty" yaml:"hasOther,omitempty"`
	HasNone                bool          `json:"hasNone,omitempty" yaml:"hasNone,omitempty"`
	HasSelectAll           bool          `json:"hasSelectAll,omitempty" yaml:"hasSelectAll,omitempty"`
	SeparateSpecialChoices bool          `json:"separateSpecialChoices,omitempty" yaml:"separateSpecialChoices,omitempty"`
	OtherText              LocalizedText `json:"otherText,omitempty" yaml:"otherText,omitempty"`
	NoneText               LocalizedText `json:"noneText,omitempty" yaml:"noneText,omitempty"`
	SelectAllText          LocalizedText `json:"selectAllText,omitempty" yaml:"selectAllText,omitempty"`
	ReadOnly               bool          `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
}

func (c Config) clone() Config {
	out := c
	out.Choices = append([]ItemConfig(nil), c.Choices...)
	if c.ChoicesByURL != nil {
		desc := *c.ChoicesByURL
		out.ChoicesByURL = &desc
	}
	out.OtherText = c.OtherText.clone()
	out.NoneText = c.NoneText.clone()
	out.SelectAllText = c.SelectAllText.clone()
	if out.ColCount < 0 {
		out.ColCount = 0
	}
	return out
}

// ChoiceSet is the ordered set of items a question currently owns: the
// configured (or fetched) choices plus one instance of each synthetic item.
// It is replaced wholesale on every rebuild.
type ChoiceSet struct {
	items   []*Item
	special map[Kind]*Item
}

func newChoiceSet(itemType ItemType, source []ItemConfig, cfg Config) *ChoiceSet {
	set := &ChoiceSet{
		items:   make([]*Item, 0, len(source)),
		special: make(map[Kind]*Item, 4),
	}
	for _, itemCfg := range source {
		set.items = append(set.items, newItem(itemType, KindChoice, itemCfg))
	}
	set.special[KindSelectAll] = newItem(itemType, KindSelectAll, ItemConfig{Text: cfg.SelectAllText})
	set.special[KindNewItem] = newItem(itemType, KindNewItem, ItemConfig{})
	set.special[KindNone] = newItem(itemType, KindNone, ItemConfig{Text: cfg.NoneText})
	set.special[KindOther] = newItem(itemType, KindOther, ItemConfig{Text: cfg.OtherText})
	return set
}

// Items returns the configured items in order.
func (s *ChoiceSet) Items() []*Item { return append([]*Item(nil), s.items...) }

// Special returns the synthetic item of the given kind.
func (s *ChoiceSet) Special(kind Kind) *Item { return s.special[kind] }

// Len returns the number of configured items.
func (s *ChoiceSet) Len() int { return len(s.items) }

type views struct {
	visible []*Item
	head    []*Item
	body    []*Item
	foot    []*Item
	columns [][]*Item
}

// Question owns a ChoiceSet and a Selection and exposes the derived views a
// renderer reads.
type Question struct {
	name         string
	qtype        QuestionType
	caps         Capabilities
	cfg          Config
	opts         options
	mode         Mode
	ctx          visibility.Context
	set          *ChoiceSet
	fetched      []ItemConfig
	choicesByURL ChoicesByURL
	fetchSeq     uint64
	selection    Selection
	comment      string
	cache        *views
}

// NewQuestion builds a question of the given type. It fails only when the
// type is not registered.
func NewQuestion(name string, qtype QuestionType, cfg Config, opts ...Option) (*Question, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	caps, ok := o.registry.Lookup(qtype)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuestionType, qtype)
	}

	q := &Question{
		name:      strings.TrimSpace(name),
		qtype:     qtype,
		caps:      caps,
		cfg:       cfg.clone(),
		opts:      o,
		mode:      o.mode,
		selection: newSelection(caps.MultiSelect),
	}
	if q.cfg.ChoicesByURL != nil {
		q.choicesByURL = *q.cfg.ChoicesByURL
	}
	q.rebuild()
	return q, nil
}

// Name returns the question name.
func (q *Question) Name() string { return q.name }

// Type returns the question type.
func (q *Question) Type() QuestionType { return q.qtype }

// Capabilities returns what the question type supports.
func (q *Question) Capabilities() Capabilities { return q.caps }

// IsMultiSelect reports whether the question keeps a list of values.
func (q *Question) IsMultiSelect() bool { return q.caps.MultiSelect }

// SupportsSeparateSpecialChoices reports whether separateSpecialChoices is an
// exposed property for this question type.
func (q *Question) SupportsSeparateSpecialChoices() bool {
	return q.caps.SeparateSpecialChoicesVisible
}

// Config returns a copy of the current configuration.
func (q *Question) Config() Config { return q.cfg.clone() }

// Locale returns the locale used for texts.
func (q *Question) Locale() string { return q.opts.locale }

// ChoiceSet returns the current set of items.
func (q *Question) ChoiceSet() *ChoiceSet { return q.set }

// Choices returns the configured (or fetched) items in order.
func (q *Question) Choices() []*Item { return q.set.Items() }

// CreateItem builds a standalone item of the question's item type. The item
// is not added to the ChoiceSet.
func (q *Question) CreateItem(value any) *Item {
	return newItem(q.caps.ItemType, KindChoice, ItemConfig{Value: value})
}

// Configure applies fn to a copy of the configuration and rebuilds the
// ChoiceSet from the result. Clearing ChoicesByURL drops the remote source
// along with any fetched choices.
func (q *Question) Configure(fn func(cfg *Config)) {
	if fn == nil {
		return
	}
	cfg := q.cfg.clone()
	fn(&cfg)
	q.cfg = cfg.clone()
	switch {
	case q.cfg.ChoicesByURL != nil && *q.cfg.ChoicesByURL != q.choicesByURL:
		q.SetChoicesByURL(*q.cfg.ChoicesByURL)
	case q.cfg.ChoicesByURL == nil && q.choicesByURL != (ChoicesByURL{}):
		q.SetChoicesByURL(ChoicesByURL{})
	default:
		q.rebuild()
	}
}

// SetChoices replaces the configured choices. Previously fetched choices are
// dropped so the new list shows; a fetch completed later replaces it again.
func (q *Question) SetChoices(items []ItemConfig) {
	q.cfg.Choices = append([]ItemConfig(nil), items...)
	q.fetched = nil
	q.rebuild()
}

// SetColumnCount changes the column count; negative values mean one column.
func (q *Question) SetColumnCount(n int) {
	if n < 0 {
		n = 0
	}
	q.cfg.ColCount = n
	q.invalidate()
}

// SetOrder overrides the fill order; an empty order defers to Settings.
func (q *Question) SetOrder(order Order) {
	q.cfg.Order = order
	q.invalidate()
}

// SetSeparateSpecialChoices toggles head/foot separation of synthetic items.
func (q *Question) SetSeparateSpecialChoices(separate bool) {
	q.cfg.SeparateSpecialChoices = separate
	q.invalidate()
}

// SetReadOnly toggles read-only mode.
func (q *Question) SetReadOnly(readOnly bool) {
	q.cfg.ReadOnly = readOnly
	q.invalidate()
}

// IsReadOnly reports whether the question rejects toggles.
func (q *Question) IsReadOnly() bool { return q.cfg.ReadOnly }

// Mode returns the current mode.
func (q *Question) Mode() Mode { return q.mode }

// IsDesignMode reports whether the question is in form-builder mode.
func (q *Question) IsDesignMode() bool { return q.mode == ModeDesign }

// SetMode switches between runtime and design mode and rebuilds the ChoiceSet.
func (q *Question) SetMode(mode Mode) {
	if q.mode == mode {
		return
	}
	q.mode = mode
	q.rebuild()
}

// SetContext replaces the values visibleIf and enableIf rules are evaluated
// against and rebuilds the ChoiceSet.
func (q *Question) SetContext(ctx visibility.Context) {
	q.ctx = ctx
	q.rebuild()
}

// AddVisibilityHook registers a hook after construction.
func (q *Question) AddVisibilityHook(hook VisibilityHook) {
	if hook == nil {
		return
	}
	q.opts.hooks = append(q.opts.hooks, hook)
	q.invalidate()
}

// Invalidate drops the cached views. Call it when state consulted by a hook
// or by Settings changed outside the question.
func (q *Question) Invalidate() { q.invalidate() }

func (q *Question) invalidate() { q.cache = nil }

func (q *Question) rebuild() {
	source := q.cfg.Choices
	if q.fetched != nil {
		source = q.fetched
	}
	q.set = newChoiceSet(q.caps.ItemType, source, q.cfg)
	q.invalidate()
}

// LayoutPolicy reports the effective layout policy.
func (q *Question) LayoutPolicy() LayoutPolicy {
	return LayoutPolicy{
		ColumnCount:            q.cfg.ColCount,
		Order:                  q.layoutOrder(),
		SeparateSpecialChoices: q.separateSpecialChoices(),
	}
}

func (q *Question) layoutOrder() Order {
	if order, ok := ParseOrder(string(q.cfg.Order)); ok {
		return order
	}
	return q.opts.settings.Order()
}

func (q *Question) separateSpecialChoices() bool {
	return q.cfg.SeparateSpecialChoices || q.mode == ModeDesign
}

// ItemText resolves the display text of item for the question's locale.
func (q *Question) ItemText(item *Item) string {
	if item == nil {
		return ""
	}
	return item.text.Text(q.opts.locale, q.opts.resolver)
}
