package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/colortools/internal/app"
	"go.trai.ch/colortools/internal/core/domain"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <color|name|pattern...>",
		Short: "Show information on colors",
		Long: `Show information on colors.

Colors may be hex (#bada55, bada55, #fff), rgb (rgb(186, 218, 85) or 186,218,85),
hsl (hsl(74, 64.3%, 59.4%)) or CSS color names. Arguments that are not colors
are looked up in the palette, and "*" matches palette names.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			format, _ := cmd.Flags().GetString("format")
			asJSON, _ := cmd.Flags().GetBool("json")
			long, _ := cmd.Flags().GetBool("long")
			sortColors, _ := cmd.Flags().GetBool("sort")
			single, _ := cmd.Flags().GetBool("single-column")
			columns, _ := cmd.Flags().GetString("columns")
			noHeaders, _ := cmd.Flags().GetBool("no-headers")
			noTruncate, _ := cmd.Flags().GetBool("no-truncate")

			// --json and --long are shorthands for --format
			switch {
			case asJSON:
				format = string(domain.FormatJSON)
			case long:
				format = string(domain.FormatLong)
			}

			return c.app.Show(cmd.Context(), cmd.OutOrStdout(), args, app.ShowOptions{
				Format:       format,
				Sort:         sortColors,
				SingleColumn: single,
				Columns:      columns,
				NoHeaders:    noHeaders,
				NoTruncate:   noTruncate,
			})
		},
	}

	cmd.Flags().StringP("format", "f", string(domain.FormatHex), "Output format: hex, json, yaml, or long")
	cmd.Flags().Bool("json", false, "Output JSON (shorthand for --format=json)")
	cmd.Flags().BoolP("long", "l", false, "Output a table (shorthand for --format=long)")
	cmd.Flags().Bool("sort", false, "Sort colors by hue, saturation and lightness")
	cmd.Flags().BoolP("single-column", "1", false, "Show one color per row")
	cmd.Flags().String("columns", "", "Comma separated long format columns: color, hex, rgb, hsl, matches, similar")
	cmd.Flags().Bool("no-headers", false, "Omit the header row in long format")
	cmd.Flags().Bool("no-truncate", false, "Do not truncate long format cells")

	return cmd
}
