package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recently used paths, most recent last",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return c.app.List(cmd.Context(), all)
		},
	}

	cmd.Flags().BoolP("all", "a", false, "List every tracked path instead of the shown ones")

	return cmd
}

func (c *CLI) newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Show the Open Recent menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Menu(cmd.Context())
		},
	}
}

func (c *CLI) newReopenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <n>",
		Short: "Run the n-th entry of the Open Recent menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrMenuIndexOutOfRange.Error()), "index", args[0])
			}
			return c.app.Reopen(cmd.Context(), n)
		},
	}
}
