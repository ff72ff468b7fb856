package choices

// LayoutPolicy controls how the body of a question is arranged.
type LayoutPolicy struct {
	// ColumnCount is the number of columns; values <= 0 mean a single column.
	ColumnCount int
	// Order is the fill order; empty defers to Settings.
	Order Order
	// SeparateSpecialChoices moves synthetic items into the head and foot
	// groups instead of keeping them inline.
	SeparateSpecialChoices bool
}

// Layout distributes items over columns. With columnCount <= 0 every item
// lands in a single column. OrderColumn fills contiguous runs where the first
// len(items) mod columnCount columns take one extra item; any other order is
// treated as OrderRow. The input slice is never retained.
func Layout(items []*Item, columnCount int, order Order) [][]*Item {
	if columnCount <= 0 {
		column := make([]*Item, len(items))
		copy(column, items)
		return [][]*Item{column}
	}

	columns := make([][]*Item, columnCount)
	n := len(items)
	base := n / columnCount
	extra := n % columnCount

	if order == OrderColumn {
		start := 0
		for col := 0; col < columnCount; col++ {
			size := base
			if col < extra {
				size++
			}
			column := make([]*Item, size)
			copy(column, items[start:start+size])
			columns[col] = column
			start += size
		}
		return columns
	}

	for col := 0; col < columnCount; col++ {
		size := base
		if col < extra {
			size++
		}
		columns[col] = make([]*Item, 0, size)
	}
	for idx, item := range items {
		col := idx % columnCount
		columns[col] = append(columns[col], item)
	}
	return columns
}
