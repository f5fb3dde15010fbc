package logic

// Direction of a cursor move
type Direction string

const (
	Up       Direction = "up"
	Down     Direction = "down"
	Left     Direction = "left"
	Right    Direction = "right"
	PageUp   Direction = "pageup"
	PageDown Direction = "pagedown"
	Home     Direction = "home"
	End      Direction = "end"
)

// Navigator moves a cursor over items laid out in rows of Columns cells.
// A list layout is a grid with one column.
type Navigator struct {
	Total    int
	Columns  int
	PageRows int
}

// NewNavigator creates a navigator
func NewNavigator(total, columns, pageRows int) *Navigator {
	return &Navigator{Total: total, Columns: max(columns, 1), PageRows: max(pageRows, 1)}
}

// Rows returns the number of rows needed for all items
func (n *Navigator) Rows() int {
	if n.Total <= 0 {
		return 0
	}
	return (n.Total + n.Columns - 1) / n.Columns
}

// Move returns the cursor after moving in dir, clamped to the items
func (n *Navigator) Move(cursor int, dir Direction) int {
	if n.Total <= 0 {
		return 0
	}

	next := cursor
	switch dir {
	case Up:
		next -= n.Columns
	case Down:
		next += n.Columns
	case Left:
		if n.Columns > 1 && cursor%n.Columns > 0 {
			next--
		}
	case Right:
		if n.Columns > 1 && cursor%n.Columns < n.Columns-1 {
			next++
		}
	case PageUp:
		next -= n.Columns * n.PageRows
	case PageDown:
		next += n.Columns * n.PageRows
	case Home:
		next = 0
	case End:
		next = n.Total - 1
	}

	// moving vertically past the edge stays in the same column when possible
	if next < 0 {
		if dir == Up || dir == PageUp {
			next = cursor % n.Columns
		} else {
			next = 0
		}
	}
	if next >= n.Total {
		if dir == Down || dir == PageDown {
			next = n.lastInColumn(cursor % n.Columns)
		} else {
			next = n.Total - 1
		}
	}
	return next
}

func (n *Navigator) lastInColumn(col int) int {
	idx := (n.Rows()-1)*n.Columns + col
	if idx >= n.Total {
		idx -= n.Columns
	}
	if idx < 0 {
		return n.Total - 1
	}
	return idx
}

// Viewport returns the first visible row so that the cursor's row is on
// screen, starting from the previous offset.
func (n *Navigator) Viewport(cursor, offset, height int) int {
	if height <= 0 {
		return 0
	}
	row := cursor / n.Columns
	if row < offset {
		offset = row
	}
	if row >= offset+height {
		offset = row - height + 1
	}
	maxOffset := max(n.Rows()-height, 0)
	return min(max(offset, 0), maxOffset)
}
