package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"selectkit/internal/eventbus"
	"selectkit/internal/selection"
	"selectkit/internal/ui"
)

// ErrCancelled is returned when the user leaves the picker without confirming
var ErrCancelled = errors.New("selection cancelled")

// NewRootCommand builds the selectkit command tree
func NewRootCommand() *cobra.Command {
	var (
		flags  sessionFlags
		print0 bool
		title  string
	)

	cmd := &cobra.Command{
		Use:   "selectkit [catalog]",
		Short: "Pick items from a catalog in the terminal",
		Long: `selectkit shows a catalog of items as a list or grid and prints the
selected ids on confirm, one per line.

A catalog is a TOML or YAML file with an items list, or just a count for
items identified by their index.

Examples:
  selectkit fruit.yaml                    # multi-select from a file
  selectkit --mode single fruit.toml      # pick exactly one
  selectkit --count 20 --layout grid      # numbered items in a grid
  selectkit --print0 hosts.yaml | xargs -0 -n1 ssh`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd, args)
			if err != nil {
				return err
			}
			defer s.Close()

			if title == "" {
				title = s.catalog.Title
			}
			return runPicker(cmd.Context(), s, title, cmd.OutOrStdout(), print0)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&print0, "print0", "0", false, "separate printed ids with NUL instead of newline")
	cmd.Flags().StringVar(&title, "title", "", "title shown above the items")

	cmd.AddCommand(initCmd())
	cmd.AddCommand(summaryCmd())

	return cmd
}

func runPicker(ctx context.Context, s *session, title string, out io.Writer, print0 bool) error {
	s.ctrl.SetListener(func(o selection.Outcome) {
		log.Printf("Outcome: %s targets=%v selected=%d", o.Action, o.TargetIDs, o.Selection.Len())
	})

	model := ui.NewModel(s.ctrl, ui.Options{
		Title:       title,
		Items:       s.catalog.Items(),
		Layout:      s.layout(),
		Columns:     s.cfg.Columns,
		ShowSummary: s.cfg.UISettings.ShowSummary,
		ShowHelp:    s.cfg.UISettings.ShowHelp,
	})

	// stdout carries the result, so the UI draws on stderr
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	model.SetProgram(p)

	log.Printf("Starting picker (%s, %s)", s.ctrl.Mode(), s.layout())
	if _, err := p.Run(); err != nil {
		s.bus.Publish(eventbus.ErrorEvent{Message: "picker stopped", Err: err})
		return fmt.Errorf("error running program: %w", err)
	}

	ids, confirmed := model.Result()
	if !confirmed {
		log.Printf("Picker cancelled")
		return ErrCancelled
	}
	log.Printf("Picker confirmed %d ids", len(ids))
	return writeIDs(out, ids, print0)
}

func writeIDs(w io.Writer, ids []string, print0 bool) error {
	sep := "\n"
	if print0 {
		sep = "\x00"
	}
	for _, id := range ids {
		if _, err := io.WriteString(w, id+sep); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the root command and exits on failure
func Execute() {
	// Handle interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		if errors.Is(err, ErrCancelled) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}
