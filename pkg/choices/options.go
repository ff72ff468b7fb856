package choices

import (
	"strings"

	"github.com/goliatone/go-choicelist/pkg/visibility"
	"github.com/goliatone/go-choicelist/pkg/visibility/expr"
)

// Mode selects between fill-out and form-builder behaviour.
type Mode int

const (
	// ModeRuntime is the end-user fill-out mode.
	ModeRuntime Mode = iota
	// ModeDesign is the form-builder mode: every supported synthetic item is
	// shown, special items are always separated, "new item" appears and hover
	// styling is suppressed.
	ModeDesign
)

func (m Mode) String() string {
	if m == ModeDesign {
		return "design"
	}
	return "runtime"
}

// VisibilityHook lets external code override whether an item is shown. It
// receives the visibility computed so far and returns the final decision.
// Hooks must not read the question's derived views.
type VisibilityHook interface {
	ShowChoice(item *Item, q *Question, visible bool) bool
}

// VisibilityHookFunc adapts a function into a VisibilityHook.
type VisibilityHookFunc func(item *Item, q *Question, visible bool) bool

// ShowChoice delegates to the underlying function.
func (fn VisibilityHookFunc) ShowChoice(item *Item, q *Question, visible bool) bool {
	return fn(item, q, visible)
}

// Option configures a Question.
type Option func(*options)

type options struct {
	registry  *Registry
	evaluator visibility.Evaluator
	hooks     []VisibilityHook
	logger    Logger
	settings  *Settings
	resolver  TextResolver
	locale    string
	classes   ItemClasses
	mode      Mode
	onOther   func(q *Question)
	observer  FetchObserver
}

func defaultOptions() options {
	return options{
		registry:  DefaultRegistry(),
		evaluator: expr.New(),
		logger:    noopLogger{},
		settings:  DefaultSettings(),
		classes:   DefaultItemClasses(),
		observer:  noopFetchObserver{},
	}
}

// WithRegistry resolves the question type against reg.
func WithRegistry(reg *Registry) Option {
	return func(o *options) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// WithEvaluator replaces the visibleIf/enableIf evaluator.
func WithEvaluator(evaluator visibility.Evaluator) Option {
	return func(o *options) {
		if evaluator != nil {
			o.evaluator = evaluator
		}
	}
}

// WithVisibilityHook registers a hook. Hooks run in registration order.
func WithVisibilityHook(hook VisibilityHook) Option {
	return func(o *options) {
		if hook != nil {
			o.hooks = append(o.hooks, hook)
		}
	}
}

// WithLogger routes engine diagnostics to logger.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSettings threads explicit settings instead of DefaultSettings.
func WithSettings(settings *Settings) Option {
	return func(o *options) {
		if settings != nil {
			o.settings = settings
		}
	}
}

// WithTextResolver resolves item texts through resolver.
func WithTextResolver(resolver TextResolver) Option {
	return func(o *options) {
		o.resolver = resolver
	}
}

// WithLocale sets the locale used for item texts and sorting.
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = strings.TrimSpace(locale)
	}
}

// WithClasses replaces the CSS class tokens used by ItemClass.
func WithClasses(classes ItemClasses) Option {
	return func(o *options) {
		o.classes = classes
	}
}

// WithMode sets the initial mode.
func WithMode(mode Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithOtherFocus registers the callback fired when "other" becomes selected,
// typically used to focus the free-text input.
func WithOtherFocus(fn func(q *Question)) Option {
	return func(o *options) {
		o.onOther = fn
	}
}

// WithFetchObserver reports the choices-by-url lifecycle to observer.
func WithFetchObserver(observer FetchObserver) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}
