package selection

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Mode is fixed for the lifetime of a controller
type Mode int

const (
	Single Mode = iota
	Multi
)

// ErrInvalidMode is returned when a mode name cannot be parsed
var ErrInvalidMode = errors.New("invalid selection mode")

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Multi:
		return "multi"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "single" or "multi" (case-insensitive)
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return Single, nil
	case "multi", "multiple":
		return Multi, nil
	default:
		return Single, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Set is a set of item identifiers. Iteration order carries no meaning.
type Set map[string]struct{}

// NewSet creates a set from the given ids, collapsing duplicates
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is a member. Safe on a nil set.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of members
func (s Set) Len() int {
	return len(s)
}

// Clone returns an independent copy
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Sorted returns the members in lexical order
func (s Set) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Equal reports whether both sets have the same members
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Constraints describe which identifiers may be selected.
//
// Available nil means the universe is not enumerated and is taken to be the
// stringified integers [0, TotalCount). A non-nil empty slice is an explicit
// empty universe.
type Constraints struct {
	Disabled   Set
	Available  []string
	TotalCount int
}

// ActionKind is the action reported on an outcome
type ActionKind string

const (
	ActionSelect    ActionKind = "select"
	ActionDeselect  ActionKind = "deselect"
	ActionSelectAll ActionKind = "selectAll"
	ActionClear     ActionKind = "clear"
)

// Request is a selection action requested by the renderer
type Request interface {
	request()
}

// Select adds ids to the selection
type Select struct {
	IDs []string
}

// Deselect removes ids from the selection
type Deselect struct {
	IDs []string
}

// Toggle flips a single id
type Toggle struct {
	ID string
}

// SelectAll selects every enabled id in the universe
type SelectAll struct{}

// Clear empties the selection
type Clear struct{}

func (Select) request()    {}
func (Deselect) request()  {}
func (Toggle) request()    {}
func (SelectAll) request() {}
func (Clear) request()     {}

// Outcome is the result of one engine call.
// TargetIDs is nil for SelectAll and Clear.
type Outcome struct {
	Selection Set
	Action    ActionKind
	TargetIDs []string
}

// Summary holds the read-only facts derived from a selection
type Summary struct {
	SelectedCount        int
	TotalCount           int
	EnabledCount         int
	EnabledSelectedCount int
	IsAllSelected        bool
	IsPartiallySelected  bool
	IsEmpty              bool
}
