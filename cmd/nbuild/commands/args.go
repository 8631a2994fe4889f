package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newArgsCmd() *cobra.Command {
	var oneLine bool

	cmd := &cobra.Command{
		Use:   "args",
		Short: "Print the native-build tool arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := c.app.Args(cmd.Context(), c.options())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if oneLine {
				_, err = fmt.Fprintln(out, strings.Join(args, " "))
				return err
			}
			for _, arg := range args {
				if _, err := fmt.Fprintln(out, arg); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&oneLine, "line", "l", false, "Print all arguments on one line")

	return cmd
}
