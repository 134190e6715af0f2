package sublsync

import (
	"fmt"

	"github.com/arthur-debert/sublsync/internal/version"
	"github.com/arthur-debert/sublsync/pkg/config"
	"github.com/arthur-debert/sublsync/pkg/core"
	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/logging"
	"github.com/arthur-debert/sublsync/pkg/paths"
	"github.com/spf13/cobra"
)

func newSyncCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		Example: MsgSyncExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, MsgFlagWatch)
	return cmd
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			report, err := core.Status(core.StatusOptions{Layout: layout})
			if err != nil {
				return err
			}
			return renderer.RenderResult(report)
		},
	}
}

func newGenconfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "genconfig [path]",
		Short:   MsgGenconfigShort,
		Long:    MsgGenconfigLong,
		Example: MsgGenconfigExample,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.genconfig")

			_, cfg, err := core.ResolveLayout(core.LayoutOptions{
				Source:      opts.source,
				Destination: opts.dest,
				ConfigFile:  opts.configFile,
			})
			if err != nil {
				return err
			}

			if len(args) == 0 {
				data, err := config.Encode(cfg)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			path, err := paths.NormalizePath(args[0])
			if err != nil {
				return err
			}
			if err := config.WriteFile(cfg, path); err != nil {
				return err
			}
			logger.Info().Str("path", path).Msg("Configuration written")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten+"\n", path)
			return err
		},
	}
}

func newGuideCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "guide",
		Short:   MsgGuideShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, format, err := newRenderer(cmd, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderGuide(MsgGuide, format))
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return errors.Newf(errors.ErrInvalidInput, "unsupported shell: %s", args[0])
		},
	}
}
