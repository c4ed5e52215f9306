package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/tutordesk/internal/app"
)

// Flags holds the persistent flags shared by every command.
type Flags struct {
	ConfigPath     string
	PrefsPath      string
	APIURL         string
	RefreshSeconds int
}

// NewRootCmd builds the tutordesk command tree. With no subcommand it starts
// the interactive TUI.
func NewRootCmd() *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:           "tutordesk",
		Short:         "Terminal client for a tutorials REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI against the configured API
  tutordesk

  # Point at another server and reload every 30 seconds
  tutordesk --api http://10.0.0.5:8080 --refresh 30

  # Write the published tutorials to a PDF
  tutordesk export --published --format pdf --output tutorials.pdf
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath:     flags.ConfigPath,
				PrefsPath:      flags.PrefsPath,
				APIURL:         flags.APIURL,
				RefreshSeconds: flags.RefreshSeconds,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", envOr("TUTORDESK_CONFIG", ""), "Path to config.toml (default ~/.config/tutordesk/config.toml)")
	cmd.PersistentFlags().StringVar(&flags.APIURL, "api", envOr("TUTORDESK_API", ""), "API base URL (overrides api_url)")
	cmd.Flags().StringVar(&flags.PrefsPath, "prefs", "", "Path to prefs.toml (default ~/.config/tutordesk/prefs.toml)")
	cmd.Flags().IntVar(&flags.RefreshSeconds, "refresh", 0, "Background reload interval in seconds (overrides refresh_interval)")

	cmd.AddCommand(newExportCmd(flags))

	return cmd
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
