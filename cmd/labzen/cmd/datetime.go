package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/labzen/tool/utils/timex"
)

func newHowLongCmd(a *app) *cobra.Command {
	var (
		pattern   string
		layout    string
		humanized bool
	)

	c := &cobra.Command{
		Use:   "howlong <time>",
		Short: "Prints the distance between now and a point in time",
		Long: `Prints the distance between now and a point in time.

The time is read with --layout (default: datetime.pattern or
yyyy-MM-dd HH:mm:ss) in the local zone and rendered with --pattern
(default: datetime.howlong_pattern).

Pattern symbols: y M w d H m s, c(before|after), (...)?, 'text', \x

Examples:
  labzen howlong "2024-12-24 18:00:00"
  labzen howlong 2024-12-24 --layout yyyy-MM-dd --pattern "d 'days'"
  labzen howlong "2024-12-24 18:00:00" --humanize`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("layout") {
				layout = a.config.GetString(keyDatePattern, timex.PatternDateTime)
			}
			if !cmd.Flags().Changed("pattern") {
				pattern = a.config.GetString(keyHowLongPattern, defaultHowLongPattern)
			}

			t, err := timex.Parse(args[0], layout)
			if err != nil {
				return a.fail(err)
			}

			if humanized {
				fmt.Fprintln(cmd.OutOrStdout(), timex.Humanize(t))
				return nil
			}

			timer := a.logger.StartTimer("howlong").WithField("pattern", pattern)
			out, err := timex.HowLong(t, pattern)
			if err != nil {
				timer.StopWithError(err)
				return err
			}
			timer.Stop()
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	c.Flags().StringVarP(&pattern, "pattern", "p", defaultHowLongPattern, "output pattern")
	c.Flags().StringVar(&layout, "layout", timex.PatternDateTime, "input pattern")
	c.Flags().BoolVar(&humanized, "humanize", false, "print an English phrase such as \"3 days ago\"")
	return c
}

func newNowCmd(a *app) *cobra.Command {
	var pattern string

	c := &cobra.Command{
		Use:   "now",
		Short: "Prints the current time (default pattern: datetime.pattern)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("pattern") {
				pattern = a.config.GetString(keyDatePattern, timex.PatternDateTime)
			}
			out, err := timex.FormatNow(pattern)
			if err != nil {
				return a.fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	c.Flags().StringVarP(&pattern, "pattern", "p", timex.PatternDateTime, "output pattern")
	return c
}
