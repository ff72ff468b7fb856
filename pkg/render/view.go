package render

import (
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-choicelist/pkg/choices"
)

// ItemView is the rendering snapshot of one item.
type ItemView struct {
	Value      any    `json:"value"`
	Text       string `json:"text"`
	Kind       string `json:"kind"`
	Type       string `json:"type"`
	Class      string `json:"class"`
	Checked    bool   `json:"checked"`
	Disabled   bool   `json:"disabled"`
	AllowHover bool   `json:"allowHover"`
	ImageLink  string `json:"imageLink,omitempty"`
	Icon       string `json:"icon,omitempty"`
	// Label is the marker and text shown by the text preview.
	Label string `json:"label"`
}

// View is the rendering snapshot of a question.
type View struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Title       string       `json:"title"`
	Mode        string       `json:"mode"`
	MultiSelect bool         `json:"multiSelect"`
	Head        []ItemView   `json:"head"`
	Columns     [][]ItemView `json:"columns"`
	Foot        []ItemView   `json:"foot"`
	// Rows lays the columns out side by side as padded text lines.
	Rows    []string `json:"rows"`
	Value   any      `json:"value"`
	Comment string   `json:"comment,omitempty"`
}

// ViewOption customises BuildView.
type ViewOption func(*View)

// WithTitle sets the question title shown above the items.
func WithTitle(title string) ViewOption {
	return func(v *View) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			v.Title = trimmed
		}
	}
}

const columnGap = "  "

// BuildView snapshots the head, columns and foot of q together with the state
// of every item.
func BuildView(q *choices.Question, opts ...ViewOption) View {
	if q == nil {
		return View{}
	}
	view := View{
		Name:        q.Name(),
		Type:        string(q.Type()),
		Title:       q.Name(),
		Mode:        q.Mode().String(),
		MultiSelect: q.IsMultiSelect(),
		Value:       q.Value(),
		Comment:     q.Comment(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&view)
		}
	}

	view.Head = itemViews(q, q.HeadItems())
	view.Foot = itemViews(q, q.FootItems())
	columns := q.Columns()
	view.Columns = make([][]ItemView, len(columns))
	for i, column := range columns {
		view.Columns[i] = itemViews(q, column)
	}
	view.Rows = textRows(view.Columns)
	return view
}

func itemViews(q *choices.Question, items []*choices.Item) []ItemView {
	out := make([]ItemView, 0, len(items))
	for _, item := range items {
		state := q.ItemState(item)
		iv := ItemView{
			Value:      item.Value(),
			Text:       q.ItemText(item),
			Kind:       item.Kind().String(),
			Type:       string(item.Type()),
			Class:      q.ItemClass(item),
			Checked:    state.Checked,
			Disabled:   state.Disabled,
			AllowHover: state.AllowHover,
			ImageLink:  item.ImageLink(),
			Icon:       item.Icon(),
		}
		iv.Label = label(q, item, iv)
		out = append(out, iv)
	}
	return out
}

func label(q *choices.Question, item *choices.Item, iv ItemView) string {
	var marker string
	switch {
	case item.Kind() == choices.KindNewItem:
		marker = "[+]"
	case q.IsMultiSelect() && iv.Checked:
		marker = "[x]"
	case q.IsMultiSelect():
		marker = "[ ]"
	case iv.Checked:
		marker = "(*)"
	default:
		marker = "( )"
	}
	text := marker + " " + iv.Text
	if item.Kind() == choices.KindOther && iv.Checked && q.Comment() != "" {
		text += ": " + q.Comment()
	}
	if iv.Disabled {
		text += " (disabled)"
	}
	return text
}

func textRows(columns [][]ItemView) []string {
	height := 0
	widths := make([]int, len(columns))
	for i, column := range columns {
		if len(column) > height {
			height = len(column)
		}
		for _, item := range column {
			if w := utf8.RuneCountInString(item.Label); w > widths[i] {
				widths[i] = w
			}
		}
	}

	rows := make([]string, 0, height)
	for r := 0; r < height; r++ {
		var line strings.Builder
		for c, column := range columns {
			cell := ""
			if r < len(column) {
				cell = column[r].Label
			}
			if c > 0 {
				line.WriteString(columnGap)
			}
			line.WriteString(cell)
			line.WriteString(strings.Repeat(" ", widths[c]-utf8.RuneCountInString(cell)))
		}
		rows = append(rows, strings.TrimRight(line.String(), " "))
	}
	return rows
}
