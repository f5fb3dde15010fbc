package selection

import "strconv"

// Project derives the display summary for a selection.
//
// When Available is given it is authoritative for the total count;
// otherwise TotalCount is used. Disabled ids outside the universe do not
// reduce EnabledCount, since SelectAll could never have picked them.
func Project(s Set, mode Mode, c Constraints) Summary {
	total := max(c.TotalCount, 0)
	if c.Available != nil {
		total = len(NewSet(c.Available...))
	}

	enabled := max(total-disabledInUniverse(c, total), 0)

	enabledSelected := 0
	for id := range s {
		if !c.Disabled.Has(id) {
			enabledSelected++
		}
	}

	return Summary{
		SelectedCount:        len(s),
		TotalCount:           total,
		EnabledCount:         enabled,
		EnabledSelectedCount: enabledSelected,
		IsAllSelected:        enabled > 0 && enabledSelected == enabled,
		IsPartiallySelected:  enabledSelected > 0 && enabledSelected < enabled,
		IsEmpty:              len(s) == 0,
	}
}

func disabledInUniverse(c Constraints, total int) int {
	n := 0
	if c.Available != nil {
		for id := range NewSet(c.Available...) {
			if c.Disabled.Has(id) {
				n++
			}
		}
		return n
	}

	// fallback universe is the canonical decimal ids "0".."total-1"
	for id := range c.Disabled {
		i, err := strconv.Atoi(id)
		if err == nil && i >= 0 && i < total && strconv.Itoa(i) == id {
			n++
		}
	}
	return n
}

// ToggleAll maps the select-all shortcut onto a request: Clear when
// everything enabled is already selected, SelectAll otherwise.
func ToggleAll(summary Summary) Request {
	if summary.IsAllSelected {
		return Clear{}
	}
	return SelectAll{}
}
