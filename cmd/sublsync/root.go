package sublsync

import (
	"context"

	"github.com/arthur-debert/sublsync/internal/version"
	"github.com/arthur-debert/sublsync/pkg/core"
	"github.com/arthur-debert/sublsync/pkg/logging"
	"github.com/arthur-debert/sublsync/pkg/types"
	"github.com/arthur-debert/sublsync/pkg/ui"
	"github.com/arthur-debert/sublsync/pkg/watch"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	verbosity  int
	dryRun     bool
	force      bool
	quiet      bool
	source     string
	dest       string
	configFile string
	format     string
	watch      bool
}

// NewRootCmd creates and returns the root command. Running it without a
// subcommand performs a sync.
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "sublsync",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgSyncExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLoggerWithOutput(opts.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			_, err := ui.ParseFormat(opts.format)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.BoolVar(&opts.force, "force", false, MsgFlagForce)
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, MsgFlagQuiet)
	flags.StringVarP(&opts.source, "source", "s", "", MsgFlagSource)
	flags.StringVarP(&opts.dest, "dest", "d", "", MsgFlagDest)
	flags.StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	flags.StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)
	rootCmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, MsgFlagWatch)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagDirname("source")
	_ = rootCmd.MarkPersistentFlagDirname("dest")

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "Misc:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSyncCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newGenconfigCmd(opts))
	rootCmd.AddCommand(newGuideCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// RenderStructuredError writes err to the command's standard output with
// the json or yaml renderer selected by --format. It reports false, writing
// nothing, for every other format.
func RenderStructuredError(rootCmd *cobra.Command, err error) bool {
	name, _ := rootCmd.PersistentFlags().GetString("format")
	format, perr := ui.ParseFormat(name)
	if perr != nil || !format.Structured() {
		return false
	}
	renderer, rerr := ui.NewRenderer(format, rootCmd.OutOrStdout())
	if rerr != nil {
		return false
	}
	return renderer.RenderError(err) == nil
}

// resolveLayout applies the flags on top of the loaded configuration
func resolveLayout(opts *rootOptions) (types.Layout, error) {
	layout, _, err := core.ResolveLayout(core.LayoutOptions{
		Source:      opts.source,
		Destination: opts.dest,
		ConfigFile:  opts.configFile,
	})
	return layout, err
}

// newRenderer builds the renderer for the command's standard output
func newRenderer(cmd *cobra.Command, opts *rootOptions) (ui.Renderer, ui.Format, error) {
	format, err := ui.ParseFormat(opts.format)
	if err != nil {
		return nil, format, err
	}
	format = ui.Resolve(format, cmd.OutOrStdout())
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	return renderer, format, err
}

func runSync(cmd *cobra.Command, opts *rootOptions) error {
	logger := logging.GetLogger("cmd.sync")

	renderer, _, err := newRenderer(cmd, opts)
	if err != nil {
		return err
	}

	layout, err := resolveLayout(opts)
	if err != nil {
		return err
	}

	if !opts.quiet {
		if err := renderer.RenderHeader(layout.SourceDir, layout.DestDir); err != nil {
			return err
		}
	}

	logger.Info().
		Bool("dryRun", opts.dryRun).
		Bool("force", opts.force).
		Bool("watch", opts.watch).
		Msg("Starting sync")

	if !opts.watch {
		return syncOnce(cmd.Context(), layout, opts, renderer)
	}

	if err := renderer.RenderMessage(MsgWatching); err != nil {
		return err
	}
	return watch.Run(cmd.Context(), layout, watch.Options{}, func(ctx context.Context) error {
		err := syncOnce(ctx, layout, opts, renderer)
		if err != nil {
			_ = renderer.RenderError(err)
		}
		return err
	})
}

// syncOnce runs one sync and renders its result
func syncOnce(ctx context.Context, layout types.Layout, opts *rootOptions, renderer ui.Renderer) error {
	result, syncErr := core.Sync(ctx, core.SyncOptions{
		Layout: layout,
		DryRun: opts.dryRun,
		Force:  opts.force,
	})
	if result != nil && len(result.Actions) > 0 {
		if err := renderer.RenderResult(result); err != nil {
			return err
		}
	}
	return syncErr
}
