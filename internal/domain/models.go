package domain

// Item is a selectable entry shown by the picker
type Item struct {
	ID          string
	Label       string
	Description string
	Disabled    bool
}

// DisplayLabel returns the label, falling back to the id
func (i Item) DisplayLabel() string {
	if i.Label != "" {
		return i.Label
	}
	return i.ID
}

// Layout controls how items are arranged on screen
type Layout string

const (
	LayoutList Layout = "list"
	LayoutGrid Layout = "grid"
)
