package visibility

// Evaluator decides whether a rule string (a choice's visibleIf or enableIf
// expression) holds for the supplied context. subject identifies what is being
// evaluated, typically "<question>.<choice value>", and is only used for
// diagnostics.
type Evaluator interface {
	Eval(subject, rule string, ctx Context) (bool, error)
}

// Context provides inputs to an Evaluator. Values typically holds the current
// survey answers keyed by question name while Extras allows callers to inject
// arbitrary context such as user roles or feature flags.
type Context struct {
	Values map[string]any
	Extras map[string]any
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(subject, rule string, ctx Context) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(subject, rule string, ctx Context) (bool, error) {
	return fn(subject, rule, ctx)
}
