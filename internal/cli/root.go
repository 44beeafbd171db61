package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/scriptsync/scriptsync/internal/branding"
	"github.com/scriptsync/scriptsync/internal/config"
	"github.com/scriptsync/scriptsync/internal/notify"
	"github.com/scriptsync/scriptsync/internal/store"
	"github.com/scriptsync/scriptsync/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose    bool
	plainOut   bool
	chatOut    bool
	releaseTag string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests and failure details")
	rootCmd.PersistentFlags().BoolVar(&plainOut, "plain", false, "Print messages without colors")
	rootCmd.PersistentFlags().BoolVar(&chatOut, "chat", false, "Print messages with section-sign color codes for the game chat")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps user scripts for a game-scripting host in sync with the
latest GitHub release of their repository. The release's metadata.json lists
the current version of every script; outdated scripts are downloaded over the
local copy and the installed version is recorded in a JSON config document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		newLogger(os.Stderr).Error(err)
	}
	return err
}

// newLogger returns the diagnostics logger; debug records only with --verbose.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: branding.CLIName()})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newNotifier picks the renderer selected by --chat/--plain. With --verbose
// messages go through logger so they interleave with the debug records.
func newNotifier(w io.Writer, logger *log.Logger) *notify.Notifier {
	var r notify.Renderer
	switch {
	case chatOut:
		r = notify.SectionRenderer
	case plainOut:
		r = notify.PlainRenderer
	default:
		r = notify.NewTerminalRenderer(w)
	}

	sink := notify.WriterSink(w)
	if verbose {
		sink = notify.LoggerSink(logger)
	}
	return notify.New(sink, r)
}

// newUpdater wires an Updater from the resolved settings.
func newUpdater(s config.Settings, n notify.Reporter, logger *log.Logger) *updater.Updater {
	selection := updater.SelectByName()
	if s.MetadataIndex >= 0 {
		selection = updater.SelectByPosition(s.MetadataIndex)
	}

	opts := []updater.Option{
		updater.WithAPIBase(s.APIBase),
		updater.WithRepo(s.Repo),
		updater.WithTimeout(s.Timeout),
		updater.WithToken(s.Token),
		updater.WithConfigPath(s.ConfigPath),
		updater.WithNotifier(n),
		updater.WithLogger(logger.WithPrefix("updater")),
		updater.WithMetadataSelection(selection),
		updater.WithStore(store.New(store.WithIndent(s.Indent), store.WithReporter(n))),
	}
	if s.Mirror != "" {
		opts = append(opts, updater.WithMirror(s.Mirror))
	}
	if releaseTag != "" {
		opts = append(opts, updater.WithTag(releaseTag))
	}
	return updater.New(opts...)
}
