package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/scriptsync/scriptsync/internal/config"
	"github.com/scriptsync/scriptsync/internal/notify"
	"github.com/spf13/cobra"
)

var checkJSON bool

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the status as JSON")
	checkCmd.Flags().StringVar(&releaseTag, "tag", "", "Compare against the release with this tag instead of the latest")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <script>",
	Short: "Show whether a script is behind the latest release",
	Long: `Looks up the latest release and compares the published version of the
script with the recorded one. Nothing is downloaded or written; a corrupt
version document is reported and left for the next update to reset.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		settings := config.Current()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		logger := newLogger(cmd.ErrOrStderr())
		u := newUpdater(settings, notify.Discard(), logger)

		status, err := u.Check(ctx, args[0])
		if err != nil {
			return fmt.Errorf("checking %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		if checkJSON {
			data, err := json.MarshalIndent(status, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling status: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s: installed %s, published %s in %s (%s)\n", status.Script, status.Current, status.Latest, status.Release, status.Relation)
		switch {
		case !status.UpdateNeeded:
			fmt.Fprintln(out, "Up to date.")
		case !status.AssetFound:
			fmt.Fprintf(out, "Update listed, but the release has no %s asset.\n", status.Asset)
		default:
			pin := ""
			if releaseTag != "" {
				pin = "--tag " + releaseTag + " "
			}
			fmt.Fprintf(out, "Update available. Run `%s update %s%s`.\n", rootCmd.Name(), pin, args[0])
		}
		return nil
	},
}
