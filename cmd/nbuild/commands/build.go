package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/nbuild/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Prepare the cache and run the native-build tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := c.app.Build(cmd.Context(), app.BuildOptions{
				Options: c.options(),
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			if dryRun {
				line := inv.Args
				if inv.Tool != "" {
					line = append([]string{inv.Tool}, inv.Args...)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(line, " "))
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the invocation instead of running it")

	return cmd
}
