package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	lzerrors "github.com/labzen/tool/core/errors"
	"github.com/labzen/tool/utils/mapx"
	"github.com/labzen/tool/utils/randx"
)

var charsets = map[string]string{
	"numbers":   randx.Numbers,
	"nonzero":   randx.NumbersWithoutZero,
	"lower":     randx.LettersLowerCase,
	"upper":     randx.LettersUpperCase,
	"letters":   randx.Letters,
	"alphanum":  randx.NumbersAndLetters,
	"hex":       randx.HexLowerCase,
	"hex-upper": randx.HexUpperCase,
}

var parities = map[string]randx.Parity{
	"any":  randx.AnyParity,
	"even": randx.Even,
	"odd":  randx.Odd,
}

func newRandomCmd(a *app) *cobra.Command {
	var (
		seed    uint64
		count   int
		length  int
		charset string
		parity  string
	)

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "Random numbers, strings, colors and UUIDs",
		Long: `Random numbers, strings, colors and UUIDs.

A non-zero --seed makes the output reproducible.

Examples:
  labzen random string -l 8 --charset hex
  labzen random int 1 7 --parity odd -n 3
  labzen random uuid`,
	}
	randomCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed for a reproducible sequence")
	randomCmd.PersistentFlags().IntVarP(&count, "count", "n", 1, "number of values to print")

	generator := func() *randx.Generator {
		if seed == 0 {
			return nil
		}
		return randx.NewGenerator(seed, seed)
	}

	repeat := func(cmd *cobra.Command, next func() (string, error)) error {
		for i := 0; i < count; i++ {
			v, err := next()
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	}

	stringCmd := &cobra.Command{
		Use:   "string",
		Short: "Prints random strings (defaults: random.length, random.charset)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				length = a.config.GetInt(keyRandomLength, 16)
			}
			if !cmd.Flags().Changed("charset") {
				charset = a.config.GetString(keyRandomCharset, "alphanum")
			}
			chars, ok := charsets[charset]
			if !ok {
				// anything else is taken as the literal character set
				chars = charset
			}

			g := generator()
			return repeat(cmd, func() (string, error) {
				if g != nil {
					return g.String(length, chars), nil
				}
				return randx.String(length, chars), nil
			})
		},
	}
	stringCmd.Flags().IntVarP(&length, "length", "l", 16, "length in characters")
	stringCmd.Flags().StringVar(&charset, "charset", "alphanum",
		"named set ("+strings.Join(mapx.SortedKeys(charsets), ", ")+") or literal characters")

	intCmd := &cobra.Command{
		Use:   "int <min> <max>",
		Short: "Prints random integers in [min, max)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			min, err := longArg("random int", "min", args[0])
			if err != nil {
				return a.fail(err)
			}
			max, err := longArg("random int", "max", args[1])
			if err != nil {
				return a.fail(err)
			}
			p, ok := parities[parity]
			if !ok {
				return a.fail(lzerrors.InvalidInput(lzerrors.ModuleCLI, "random int", "parity must be any, even or odd", parity))
			}

			g := generator()
			return repeat(cmd, func() (string, error) {
				var (
					n   int64
					err error
				)
				if g != nil {
					n, err = g.Int64(min, max, p)
				} else {
					n, err = randx.Int64(min, max, p)
				}
				return fmt.Sprint(n), err
			})
		},
	}
	intCmd.Flags().StringVar(&parity, "parity", "any", "any, even or odd")

	uuidCmd := &cobra.Command{
		Use:   "uuid",
		Short: "Prints random version 4 UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := generator()
			return repeat(cmd, func() (string, error) {
				if g != nil {
					return g.UUID(), nil
				}
				return randx.UUID(), nil
			})
		},
	}

	colorCmd := &cobra.Command{
		Use:   "color",
		Short: "Prints random colors as #rrggbb",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := generator()
			return repeat(cmd, func() (string, error) {
				if g != nil {
					return g.HexColor(), nil
				}
				return randx.HexColor(), nil
			})
		},
	}

	randomCmd.AddCommand(stringCmd, intCmd, uuidCmd, colorCmd)
	return randomCmd
}

