// Package render turns a question's derived views into output. BuildView
// snapshots a question into a View; Renderers registered in a Registry turn
// the View into bytes. The text renderer draws a plain preview through pongo2
// templates, the styled renderer lays the columns out with lipgloss for a
// terminal and the json renderer emits the View itself.
package render
