package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/tutordesk/internal/app"
	"github.com/five82/tutordesk/internal/export"
)

func newExportCmd(flags *Flags) *cobra.Command {
	opts := app.ExportOptions{Format: "html"}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch the tutorial list once and write it out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = flags.ConfigPath
			opts.APIURL = flags.APIURL
			if opts.PublishedOnly && strings.TrimSpace(opts.Title) != "" {
				return fmt.Errorf("--published and --title cannot be combined")
			}
			return app.Export(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", opts.Format, "Output format ("+strings.Join(export.Formats, "|")+")")
	cmd.Flags().BoolVar(&opts.PublishedOnly, "published", false, "Only published tutorials")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Filter by title substring")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}
