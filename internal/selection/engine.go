package selection

import "strconv"

// Apply computes the next selection for a request. It never mutates current.
//
// The returned bool is false when the request had no effect and listeners
// must not be notified: a Select whose ids are all disabled, a Toggle of a
// disabled id, SelectAll in Single mode, or a nil request. In those cases
// the outcome still carries an unchanged copy of current.
func Apply(current Set, mode Mode, c Constraints, req Request) (Outcome, bool) {
	switch r := req.(type) {
	case Select:
		return applySelect(current, mode, c, r.IDs)
	case Deselect:
		return applyDeselect(current, r.IDs), true
	case Toggle:
		if c.Disabled.Has(r.ID) {
			return unchanged(current, ActionSelect), false
		}
		if current.Has(r.ID) {
			return applyDeselect(current, []string{r.ID}), true
		}
		return applySelect(current, mode, c, []string{r.ID})
	case SelectAll:
		if mode == Single {
			return unchanged(current, ActionSelectAll), false
		}
		return Outcome{Selection: enabledUniverse(c), Action: ActionSelectAll}, true
	case Clear:
		return Outcome{Selection: Set{}, Action: ActionClear}, true
	default:
		return unchanged(current, ActionSelect), false
	}
}

func applySelect(current Set, mode Mode, c Constraints, ids []string) (Outcome, bool) {
	valid := filterEnabled(ids, c.Disabled)
	if len(valid) == 0 {
		return unchanged(current, ActionSelect), false
	}

	var next Set
	if mode == Single {
		// first valid id wins
		next = NewSet(valid[0])
	} else {
		next = current.Clone()
		for _, id := range valid {
			next[id] = struct{}{}
		}
	}
	return Outcome{Selection: next, Action: ActionSelect, TargetIDs: valid}, true
}

// applyDeselect removes ids; non-members are ignored and disabled ids are
// always removable.
func applyDeselect(current Set, ids []string) Outcome {
	next := current.Clone()
	for _, id := range ids {
		delete(next, id)
	}
	return Outcome{Selection: next, Action: ActionDeselect, TargetIDs: dedupe(ids)}
}

func unchanged(current Set, action ActionKind) Outcome {
	return Outcome{Selection: current.Clone(), Action: action}
}

// filterEnabled drops disabled ids and duplicates, keeping request order
func filterEnabled(ids []string, disabled Set) []string {
	out := make([]string, 0, len(ids))
	seen := make(Set, len(ids))
	for _, id := range ids {
		if disabled.Has(id) || seen.Has(id) {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func dedupe(ids []string) []string {
	return filterEnabled(ids, nil)
}

// enabledUniverse returns every id in the universe that is not disabled.
// Without an explicit Available list this materializes TotalCount ids.
func enabledUniverse(c Constraints) Set {
	if c.Available != nil {
		out := make(Set, len(c.Available))
		for _, id := range c.Available {
			if !c.Disabled.Has(id) {
				out[id] = struct{}{}
			}
		}
		return out
	}

	out := make(Set, max(c.TotalCount, 0))
	for i := 0; i < c.TotalCount; i++ {
		id := strconv.Itoa(i)
		if !c.Disabled.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Narrow derives the initial selection for a controller in the given mode.
// Narrowing to Single keeps only the first member in sorted order.
func Narrow(s Set, mode Mode) Set {
	if mode == Multi || len(s) <= 1 {
		return s.Clone()
	}
	return NewSet(s.Sorted()[0])
}
