package choices

import (
	"strings"
	"sync"
)

// Order selects how body items are distributed across columns.
type Order string

const (
	// OrderRow fills columns round-robin: item i goes to column i mod n.
	OrderRow Order = "row"
	// OrderColumn fills each column with a contiguous run of items.
	OrderColumn Order = "column"
)

// ParseOrder normalises a configured order. Unknown values report false.
func ParseOrder(raw string) (Order, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "row", "rows":
		return OrderRow, true
	case "column", "columns", "col":
		return OrderColumn, true
	default:
		return "", false
	}
}

// Settings holds defaults shared by every question that does not override them.
// Changes apply to layouts computed afterwards; cached columns are not
// recomputed until their question is invalidated.
type Settings struct {
	mu    sync.RWMutex
	order Order
}

// NewSettings returns settings with the supplied default order.
func NewSettings(order Order) *Settings {
	if order == "" {
		order = OrderRow
	}
	return &Settings{order: order}
}

var defaultSettings = NewSettings(OrderRow)

// DefaultSettings returns the process-wide settings.
func DefaultSettings() *Settings { return defaultSettings }

// Order returns the default item order.
func (s *Settings) Order() Order {
	if s == nil {
		return OrderRow
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.order
}

// SetOrder changes the default item order. Empty values reset it to OrderRow.
func (s *Settings) SetOrder(order Order) {
	if s == nil {
		return
	}
	if order == "" {
		order = OrderRow
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = order
}
