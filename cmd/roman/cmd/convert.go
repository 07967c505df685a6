package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// ErrNotInteger is returned when an argument cannot be parsed as an integer.
var ErrNotInteger = errors.New("roman: argument is not an integer")

func newConvertCmd(a *app) *cobra.Command {
	var withValues bool

	c := &cobra.Command{
		Use:   "convert N [N...]",
		Short: "Convert one or more integers",
		Long: `Convert each integer argument into its Roman numeral, in argument order.

Every argument is checked before anything is printed; a value outside the
accepted interval fails the whole command.`,
		Example: `  roman convert 1990
  roman convert 4 9 14 --notation additive
  roman convert 2024 --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}

			items, err := a.enc.ConvertAll(values...)
			if err != nil {
				a.logger.Debug("conversion failed", "args", args, "error", err)
				return fmt.Errorf("convert: %w", err)
			}
			a.logger.Debug("converted", "count", len(items))

			return a.emit(cmd, items, withValues)
		},
	}
	c.Flags().BoolVar(&withValues, "with-values", false, "print the input value next to each numeral (text format)")

	return c
}

// parseInts converts every argument or names the first one that is not an integer.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotInteger, arg)
		}
		out[i] = v
	}

	return out, nil
}
