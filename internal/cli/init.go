package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ftracker/internal/config"
)

func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write an example config with the demo packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(opts.configPath)
			if err != nil {
				return err
			}
			if opts.configPath == "" {
				err = config.CreateExample()
			} else {
				err = config.CreateExampleFile(path)
			}
			if err != nil {
				return fmt.Errorf("creating example config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config file at:\n  %s\n", path)
			return nil
		},
	}
}
