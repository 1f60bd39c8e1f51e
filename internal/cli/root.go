package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ftracker/internal/config"
	"ftracker/internal/report"
	"ftracker/internal/workout"
)

type options struct {
	configPath string
	styled     bool
}

// NewRootCmd builds the ftracker command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "ftracker",
		Short:         "ftracker summarises workouts from raw sensor packages",
		Long:          "ftracker computes distance, mean speed and calories for running, walking and swimming sensor packages.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			if opts.styled || cfg.Display.Styled {
				return report.WritePackages(cmd.OutOrStdout(), cfg.Packages)
			}
			return workout.RunPackages(cmd.OutOrStdout(), cfg.Packages)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default ~/.ftracker/config.json)")
	root.PersistentFlags().BoolVar(&opts.styled, "styled", false, "Render summaries as cards")

	root.AddCommand(newCalcCmd(opts), newInitCmd(opts))
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig falls back to defaults when no config file exists
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(path)
	}
	if errors.Is(err, config.ErrNoConfig) {
		defaults := config.DefaultConfig()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func resolveConfigPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return config.DefaultPath()
}
