package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	lzerrors "github.com/labzen/tool/core/errors"
	"github.com/labzen/tool/utils/objectx"
	"github.com/labzen/tool/utils/slicex"
	"github.com/labzen/tool/utils/stringx"
)

var caseModes = []string{"studly", "camel", "snake", "kebab", "lower", "upper", "words"}

func newCaseCmd(a *app) *cobra.Command {
	var upper bool

	c := &cobra.Command{
		Use:   "case <studly|camel|snake|kebab|lower|upper|words> <text>",
		Short: "Converts text between naming conventions",
		Long: `Converts text between naming conventions.

Examples:
  labzen case studly there_is_a_word     # ThereIsAWord
  labzen case snake ThereIsAWord -u      # THERE_IS_A_WORD
  labzen case words "HTTPServer2Go"      # http server2 go`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: caseModes,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, text := args[0], args[1]
			caseMode := stringx.LowerCase
			if upper {
				caseMode = stringx.UpperCase
			}

			var out string
			switch mode {
			case "studly":
				out = stringx.StudlyCase(text)
			case "camel":
				out = stringx.CamelCase(text)
			case "snake":
				out = stringx.SnakeCase(text, caseMode)
			case "kebab":
				out = stringx.KebabCase(text, caseMode)
			case "lower":
				out = strings.ToLower(text)
			case "upper":
				out = strings.ToUpper(text)
			case "words":
				out = strings.Join(stringx.Words(text, caseMode), " ")
			default:
				return a.fail(lzerrors.InvalidInput(lzerrors.ModuleCLI, "case",
					"mode must be one of "+strings.Join(caseModes, ", "), mode))
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	c.Flags().BoolVarP(&upper, "upper", "u", false, "upper case words for snake, kebab and words")
	return c
}

func newSubCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sub <text> <start> <length>",
		Short: "Cuts length characters from start; negative values count backwards",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := intArg("sub", "start", args[1])
			if err != nil {
				return a.fail(err)
			}
			length, err := intArg("sub", "length", args[2])
			if err != nil {
				return a.fail(err)
			}

			out, err := stringx.Sub(args[0], start, length)
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newFormatCmd(a *app) *cobra.Command {
	var nullToken string

	c := &cobra.Command{
		Use:   "format <template> [args...]",
		Short: "Replaces {} placeholders with the arguments in order",
		Long: `Replaces {} placeholders with the arguments in order.

A placeholder preceded by a backslash is printed as {}. Arguments equal
to the --null token render as [null].`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]interface{}, 0, len(args)-1)
			for _, arg := range args[1:] {
				if nullToken != "" && arg == nullToken {
					values = append(values, nil)
					continue
				}
				values = append(values, arg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.Format(args[0], values...))
			return nil
		},
	}

	c.Flags().StringVar(&nullToken, "null", "", "argument value that stands for a missing value")
	return c
}

func newBriefCmd(a *app) *cobra.Command {
	var (
		maxLength int
		ellipsis  string
	)

	c := &cobra.Command{
		Use:   "brief <text...>",
		Short: "Shortens text to at most --max characters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("ellipsis") {
				ellipsis = a.config.GetString(keyStringsEllipsis, "...")
			}

			text := strings.Join(slicex.RemoveBlankString(args), " ")
			out, err := stringx.Brief(text, maxLength, ellipsis)
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	c.Flags().IntVarP(&maxLength, "max", "m", 40, "maximum length in characters")
	c.Flags().StringVar(&ellipsis, "ellipsis", "...", "text appended to shortened output")
	return c
}

func intArg(op, name, value string) (int, error) {
	n, ok := objectx.CanBeInt(value)
	if !ok {
		return 0, lzerrors.InvalidFormat(lzerrors.ModuleCLI, op, value, name+" as an integer")
	}
	return int(n), nil
}

func longArg(op, name, value string) (int64, error) {
	n, ok := objectx.CanBeLong(value)
	if !ok {
		return 0, lzerrors.InvalidFormat(lzerrors.ModuleCLI, op, value, name+" as an integer")
	}
	return n, nil
}
