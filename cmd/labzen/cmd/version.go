package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/labzen/tool/pkg/core/version"
)

var (
	GitCommit = "development"
	BuildDate = "unknown"
)

func newVersionCmd(a *app) *cobra.Command {
	var (
		constraint string
		components bool
	)

	c := &cobra.Command{
		Use:   "version",
		Short: "Shows the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if constraint != "" {
				ok, err := version.Satisfies(version.Tool, constraint)
				if err != nil {
					return a.fail(err)
				}
				fmt.Fprintln(out, ok)
				return nil
			}

			fmt.Fprintln(out, titleStyle.Render("labzen v"+version.Tool))
			fmt.Fprintln(out, labelStyle.Render("Git Commit:")+GitCommit)
			fmt.Fprintln(out, labelStyle.Render("Build Date:")+BuildDate)
			fmt.Fprintln(out, labelStyle.Render("Go Version:")+runtime.Version())
			fmt.Fprintln(out, labelStyle.Render("OS/Arch:")+runtime.GOOS+"/"+runtime.GOARCH)

			if components {
				for _, name := range version.Components() {
					fmt.Fprintln(out, labelStyle.Render(name+":")+version.ComponentVersion(name))
				}
			}
			return nil
		},
	}

	c.Flags().StringVar(&constraint, "check", "", "print whether the version satisfies a constraint such as \">= 0.2\"")
	c.Flags().BoolVar(&components, "components", false, "list component versions")
	return c
}
