package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ftracker/internal/report"
	"ftracker/internal/workout"
)

func newCalcCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <CODE> <value>...",
		Short: "Summarise a single sensor package",
		Long: "Summarise a single sensor package. Values are positional:\n" +
			"  RUN action duration weight\n" +
			"  WLK action duration weight height\n" +
			"  SWM action duration weight count_pool length_pool",
		Example: "  ftracker calc RUN 15000 1 75",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.TrimSpace(args[0])
			if !workout.Supported(code) {
				return &workout.UnsupportedTypeError{Code: code}
			}
			data, err := parseValues(args[1:])
			if err != nil {
				return err
			}
			wk, err := workout.ReadPackage(code, data)
			if err != nil {
				return err
			}
			if opts.styled {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), report.RenderCard(wk.Summary()))
				return err
			}
			return workout.Run(cmd.OutOrStdout(), wk)
		},
	}
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for i, raw := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %d %q: %w", i+1, raw, err)
		}
		values = append(values, v)
	}
	return values, nil
}
