package sublsync

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Keep Sublime Text settings in sync with a dotfiles directory"
	MsgSyncShort       = "Link settings, keymaps and projects into Sublime Text"
	MsgStatusShort     = "Show the link state of tracked files"
	MsgGenconfigShort  = "Print or write the effective configuration"
	MsgGuideShort      = "Show the user guide"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	MsgConfigWritten = "Wrote configuration to %s"
	MsgWatching      = "Watching for changes, press Ctrl+C to stop"
	MsgVersionFormat = "sublsync version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagForce   = "Back up real files in the way and link over them"
	MsgFlagSource  = "Source directory (default: $SUBLSYNC_SOURCE, the binary's directory or the current directory)"
	MsgFlagDest    = "Destination directory (default: Sublime Text's Packages/User)"
	MsgFlagConfig  = "Configuration file (default: $XDG_CONFIG_HOME/sublsync/config.toml)"
	MsgFlagFormat  = "Output format: auto, term, text, json or yaml"
	MsgFlagQuiet   = "Do not print the source and destination paths"
	MsgFlagWatch   = "Keep running and sync again when tracked files change"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/sync-example.txt
	msgSyncExampleRaw string
	MsgSyncExample    = strings.TrimRight(msgSyncExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenconfigLongRaw string
	MsgGenconfigLong    = strings.TrimSpace(msgGenconfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenconfigExampleRaw string
	MsgGenconfigExample    = strings.TrimRight(msgGenconfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/guide.md
	MsgGuide string
)
