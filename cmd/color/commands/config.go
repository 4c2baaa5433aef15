package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/colortools/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <get|set|delete|list>",
		Short: "Read, set, and delete config data",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			return zerr.With(
				zerr.Wrap(domain.ErrUnknownConfigTopic, fmt.Sprintf("unknown config topic %q", args[0])),
				"topic", args[0],
			)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print the value stored at key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.ConfigGet(cmd.Context(), cmd.OutOrStdout(), args[0])
			},
		},
		&cobra.Command{
			Use:   "set <key> <color>",
			Short: "Store a color at key",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.ConfigSet(cmd.Context(), args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "delete <key>",
			Short: "Delete the value stored at key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.ConfigDelete(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List every config key and value",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.ConfigList(cmd.Context(), cmd.OutOrStdout())
			},
		},
	)

	return cmd
}
