package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"selectkit/internal/selection"
)

func summaryCmd() *cobra.Command {
	var (
		flags   sessionFlags
		actions []string
	)

	cmd := &cobra.Command{
		Use:   "summary [catalog]",
		Short: "Apply scripted actions and print the selection summary",
		Long: `summary runs actions against a catalog without a terminal UI and prints
one line per action followed by the summary of the final selection.

Actions, applied in order:
  select:a,b    add ids (single mode keeps the first enabled one)
  deselect:a,b  remove ids
  toggle:a      flip one id
  all           select every enabled item
  clear         empty the selection`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs := make([]selection.Request, 0, len(actions))
			for _, a := range actions {
				req, err := parseAction(a)
				if err != nil {
					return err
				}
				reqs = append(reqs, req)
			}

			s, err := flags.open(cmd, args)
			if err != nil {
				return err
			}
			defer s.Close()

			return runSummary(cmd.OutOrStdout(), s.ctrl, actions, reqs)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringArrayVar(&actions, "do", nil, "action to apply (repeatable)")

	return cmd
}

func runSummary(out io.Writer, ctrl *selection.Controller, actions []string, reqs []selection.Request) error {
	for i, req := range reqs {
		o, ok := ctrl.Apply(req)
		if !ok {
			fmt.Fprintf(out, "%-20s no change\n", actions[i])
			continue
		}
		line := fmt.Sprintf("%-20s %s", actions[i], o.Action)
		if len(o.TargetIDs) > 0 {
			line += " " + strings.Join(o.TargetIDs, ",")
		}
		fmt.Fprintf(out, "%s -> [%s]\n", line, strings.Join(o.Selection.Sorted(), ","))
	}

	return writeSummary(out, ctrl.Selection(), ctrl.Summary())
}

func writeSummary(out io.Writer, sel selection.Set, sum selection.Summary) error {
	state := "none"
	switch {
	case sum.IsEmpty:
		state = "empty"
	case sum.IsAllSelected:
		state = "all"
	case sum.IsPartiallySelected:
		state = "partial"
	}
	_, err := fmt.Fprintf(out,
		"selected=%d total=%d enabled=%d enabledSelected=%d state=%s ids=[%s]\n",
		sum.SelectedCount, sum.TotalCount, sum.EnabledCount, sum.EnabledSelectedCount,
		state, strings.Join(sel.Sorted(), ","))
	return err
}
