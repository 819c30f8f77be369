package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>...",
		Short: "Report paths as opened",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Open(cmd.Context(), args)
		},
	}
}

func (c *CLI) newSavedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "saved <path>...",
		Short: "Report paths as saved",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Saved(cmd.Context(), args)
		},
	}
}

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>...",
		Short: "Record files saved below directories until interrupted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), args)
		},
	}
}
