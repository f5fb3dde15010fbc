package cli

import (
	"fmt"
	"strings"

	"selectkit/internal/selection"
)

// parseAction turns a scripted action into a request:
//
//	select:a,b  deselect:a  toggle:a  all  clear
func parseAction(s string) (selection.Request, error) {
	verb, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	ids := splitIDs(arg)

	switch strings.ToLower(verb) {
	case "select":
		if len(ids) == 0 {
			return nil, fmt.Errorf("action %q: select needs ids", s)
		}
		return selection.Select{IDs: ids}, nil
	case "deselect":
		if len(ids) == 0 {
			return nil, fmt.Errorf("action %q: deselect needs ids", s)
		}
		return selection.Deselect{IDs: ids}, nil
	case "toggle":
		if len(ids) != 1 {
			return nil, fmt.Errorf("action %q: toggle takes exactly one id", s)
		}
		return selection.Toggle{ID: ids[0]}, nil
	case "all", "selectall":
		if hasArg {
			return nil, fmt.Errorf("action %q: all takes no ids", s)
		}
		return selection.SelectAll{}, nil
	case "clear":
		if hasArg {
			return nil, fmt.Errorf("action %q: clear takes no ids", s)
		}
		return selection.Clear{}, nil
	default:
		return nil, fmt.Errorf("unknown action %q", s)
	}
}

func splitIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
