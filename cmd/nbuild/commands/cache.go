package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/nbuild/internal/core/domain"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the versioned build cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "prepare",
		Short: "Clear a cache built by another tool version and mark it with the current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.PrepareCache(cmd.Context(), c.options())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether the cache matches the current tool version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.Status(cmd.Context(), c.options())
			if err != nil {
				return err
			}
			return c.printStatus(cmd, status)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Remove the tool cache and every version marker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Clean(cmd.Context(), c.options())
		},
	})

	return cmd
}

func (c *CLI) printStatus(cmd *cobra.Command, status *domain.CacheStatus) error {
	out := cmd.OutOrStdout()

	if c.jsonOutput {
		doc := *status
		if doc.Markers == nil {
			doc.Markers = []string{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	markers := "none"
	if len(status.Markers) > 0 {
		markers = strings.Join(status.Markers, ", ")
	}

	_, err := fmt.Fprintf(out,
		"state:      %s\nroot:       %s\ntool cache: %s\nversion:    %s\nmarkers:    %s\n",
		status.State, status.Root, status.ToolCacheDir, status.Version, markers,
	)
	return err
}
