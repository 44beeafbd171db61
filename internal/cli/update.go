package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/scriptsync/scriptsync/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func init() {
	updateCmd.Flags().StringVar(&releaseTag, "tag", "", "Use the release with this tag instead of the latest")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <script>...",
	Short: "Update scripts to the version listed in the latest release",
	Long: `Checks the latest release for each script and, when the recorded version
differs from the published one, downloads the script asset over the local file.
--tag pins the lookup to one release, e.g. to roll back.

  scriptsync update ./scripts/auto-fish.js
  scriptsync update scripts/*.js
  scriptsync update --tag 1.4.0 ./scripts/auto-fish.js`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		settings := config.Current()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		logger := newLogger(cmd.ErrOrStderr())
		n := newNotifier(cmd.ErrOrStderr(), logger)
		u := newUpdater(settings, n, logger)

		updated := 0
		for _, path := range args {
			if u.UpdateScript(ctx, path) {
				updated++
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), printer.Sprintf("%d of %d scripts updated", updated, len(args)))
		return nil
	},
}
