package render

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StyledOption configures the styled renderer.
type StyledOption func(*StyledRenderer)

// WithOutput detects the color profile from w instead of stdout.
func WithOutput(w io.Writer) StyledOption {
	return func(r *StyledRenderer) {
		if w != nil {
			r.lg = lipgloss.NewRenderer(w)
		}
	}
}

// WithBorder draws a rounded border around the preview.
func WithBorder(enabled bool) StyledOption {
	return func(r *StyledRenderer) {
		r.border = enabled
	}
}

// StyledRenderer draws the preview for a terminal: columns are laid out with
// lipgloss, checked items are highlighted and disabled ones dimmed.
type StyledRenderer struct {
	lg     *lipgloss.Renderer
	border bool
}

var _ Renderer = (*StyledRenderer)(nil)

// NewStyledRenderer returns a renderer writing for stdout unless WithOutput
// says otherwise.
func NewStyledRenderer(opts ...StyledOption) *StyledRenderer {
	r := &StyledRenderer{}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.lg == nil {
		r.lg = lipgloss.NewRenderer(os.Stdout)
	}
	return r
}

// Name implements Renderer.
func (r *StyledRenderer) Name() string { return "styled" }

// ContentType implements Renderer.
func (r *StyledRenderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render implements Renderer.
func (r *StyledRenderer) Render(ctx context.Context, view View) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title := r.lg.NewStyle().Bold(true)
	header := view.Title
	if view.Mode == "design" {
		header += " " + r.lg.NewStyle().Faint(true).Render("[design]")
	}

	blocks := []string{title.Render(header)}
	if len(view.Head) > 0 {
		blocks = append(blocks, r.list(view.Head))
	}
	if body := r.columns(view.Columns); body != "" {
		blocks = append(blocks, body)
	}
	if len(view.Foot) > 0 {
		blocks = append(blocks, r.list(view.Foot))
	}

	out := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	if r.border {
		out = r.lg.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Render(out)
	}
	return []byte(out + "\n"), nil
}

func (r *StyledRenderer) columns(columns [][]ItemView) string {
	blocks := make([]string, 0, len(columns))
	for i, column := range columns {
		if len(column) == 0 {
			continue
		}
		block := r.list(column)
		if i < len(columns)-1 {
			block = r.lg.NewStyle().PaddingRight(len(columnGap)).Render(block)
		}
		blocks = append(blocks, block)
	}
	if len(blocks) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (r *StyledRenderer) list(items []ItemView) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = r.cell(item).Render(item.Label)
	}
	return strings.Join(lines, "\n")
}

func (r *StyledRenderer) cell(item ItemView) lipgloss.Style {
	style := r.lg.NewStyle()
	switch {
	case item.Disabled:
		style = style.Faint(true)
	case item.Checked:
		style = style.Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1F6FEB", Dark: "#58A6FF"})
	case item.Kind != "choice":
		style = style.Italic(true)
	}
	return style
}
