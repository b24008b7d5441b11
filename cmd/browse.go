package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"custctl/internal/api"
	"custctl/internal/config"
	"custctl/internal/tui"
	"custctl/pkg/logging"
)

func newBrowseCmd() *cobra.Command {
	var apiURL string
	var limit int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive customer browser",
		Long: `Launches the full-screen customer browser.

The list supports incremental search (typed text is applied after a
short quiet period), paging with pgup/pgdn, a detail panel (enter),
adding and editing customers (ctrl+n / ctrl+e), deactivation with a
confirmation prompt (ctrl+d) and granting memberships from the detail
panel (ctrl+g).

Connection settings come from the layered config files
(~/.config/custctl/config.yaml, then ./.custctl/config.yaml); the
--api and --limit flags override them for a single run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if apiURL != "" {
				cfg.API.BaseURL = apiURL
			}
			if limit > 0 {
				cfg.UI.PageLimit = limit
			}

			// The TUI owns the terminal, so logs go to a file instead.
			logPath, err := logging.InitForTUI(logging.LevelInfo)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
			} else {
				defer logging.Close()
				logging.Info("CLI", "Logging to %s", logPath)
			}

			client := api.NewClient(cfg.API.BaseURL)
			return tui.Run(client, tui.Options{
				PageLimit:      cfg.UI.PageLimit,
				SearchDebounce: cfg.UI.SearchDebounce.Std(),
				RequestTimeout: cfg.API.Timeout.Std(),
			})
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "", "Base URL of the customer API (overrides config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Customers per page (overrides config)")
	return cmd
}
