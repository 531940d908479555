package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/outliner/internal/version"
	"github.com/arthur-debert/outliner/pkg/cobrax/topics"
	"github.com/arthur-debert/outliner/pkg/config"
	"github.com/arthur-debert/outliner/pkg/logging"
	"github.com/arthur-debert/outliner/pkg/outliner"
	"github.com/arthur-debert/outliner/pkg/ui"
	"github.com/arthur-debert/outliner/pkg/ui/display"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "outliner",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Keep config loading quiet unless -v was given
			zerolog.SetGlobalLevel(logging.LevelForVerbosity(a.verbosity))

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			a.closeLogs()
			a.closeLog = logging.SetupLogger(a.verbosity + cfg.Log.Verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&a.file, "file", "f", "", MsgFlagFile)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", MsgFlagFormat)

	rootCmd.AddGroup(
		&cobra.Group{ID: "scene", Title: "Scene:"},
		&cobra.Group{ID: "operators", Title: "Operators:"},
		&cobra.Group{ID: "misc", Title: "Misc:"},
	)

	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newShowCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newSelectCmd(a))
	rootCmd.AddCommand(newOperatorsCmd(a))
	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newLinkCmd(a))
	rootCmd.AddCommand(newUnlinkCmd(a))
	rootCmd.AddCommand(newNewCmd(a))
	rootCmd.AddCommand(newDeleteCmd(a))
	rootCmd.AddCommand(newActivateCmd(a))
	rootCmd.AddCommand(newToggleCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	if err := initTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// initTopics serves the embedded topics and one topic per operator through
// `outliner help`.
func initTopics(rootCmd *cobra.Command) error {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return err
	}
	tm, err := topics.InitializeWithOptions(rootCmd, sub, topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	if err != nil {
		return err
	}
	for _, info := range display.NewOperatorInfos(outliner.NewRegistry().Values(), nil) {
		tm.Add(info.ID, ".md", display.OperatorMarkdown(info))
	}
	return nil
}

// Execute runs the command line and returns the process exit status.
// Errors not rendered by a command are written to stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	defer a.closeLogs()

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var reported reportedError
	if !errors.As(err, &reported) {
		format := ui.FormatText
		if f, ok := stderr.(*os.File); ok {
			format = ui.DetectFormat(f)
		}
		r, rerr := ui.NewRenderer(format, stderr)
		if rerr != nil || r.RenderError(err) != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
	}
	return 1
}
