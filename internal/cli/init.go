package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"selectkit/internal/config"
	"selectkit/internal/eventbus"
)

func initCmd() *cobra.Command {
	var (
		path  string
		mode  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.FileName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}

			cfg := config.DefaultConfig()
			if mode != "" {
				cfg.Mode = mode
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			bus := eventbus.New()
			bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", e.(eventbus.ConfigSavedEvent).Path)
			})
			return config.NewConfigServiceWithBus(bus).SaveToPath(cfg, path)
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", config.FileName, "path to write")
	cmd.Flags().StringVar(&mode, "mode", "", "selection mode: single or multi")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}
