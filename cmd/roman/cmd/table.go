package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table FROM TO",
		Short: "List every numeral of an inclusive interval",
		Example: `  roman table 1 12
  roman table 1990 2010 --format yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := parseInts(args)
			if err != nil {
				return err
			}

			items, err := a.enc.ConvertRange(bounds[0], bounds[1])
			if err != nil {
				a.logger.Debug("table failed", "from", bounds[0], "to", bounds[1], "error", err)
				return fmt.Errorf("table: %w", err)
			}
			a.logger.Debug("table built", "from", bounds[0], "to", bounds[1], "count", len(items))

			return a.emit(cmd, items, true)
		},
	}
}
