package template

// Engine renders a named template with data. Template names omit the file
// extension.
type Engine interface {
	Render(name string, data map[string]any) (string, error)
}

// EngineFunc adapts a function into an Engine.
type EngineFunc func(name string, data map[string]any) (string, error)

// Render delegates to the underlying function.
func (fn EngineFunc) Render(name string, data map[string]any) (string, error) {
	return fn(name, data)
}
