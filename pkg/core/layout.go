package core

import (
	"github.com/arthur-debert/sublsync/pkg/config"
	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/logging"
	"github.com/arthur-debert/sublsync/pkg/matchers"
	"github.com/arthur-debert/sublsync/pkg/paths"
	"github.com/arthur-debert/sublsync/pkg/types"
)

// LayoutOptions holds the command line overrides applied on top of the
// loaded configuration
type LayoutOptions struct {
	Source      string
	Destination string
	ConfigFile  string
}

// ResolveLayout loads the configuration and turns it into a Layout.
//
// The configuration is read twice: the first pass finds the source
// directory, the second one adds the source's own .sublsync.toml.
func ResolveLayout(opts LayoutOptions) (types.Layout, *config.Config, error) {
	logger := logging.GetLogger("core.layout")

	cfg, err := config.Load(config.LoadOptions{ConfigFile: opts.ConfigFile})
	if err != nil {
		return types.Layout{}, nil, err
	}

	explicit := opts.Source
	if explicit == "" {
		explicit = cfg.Source
	}
	bootstrap, err := matchers.New(cfg.Patterns)
	if err != nil {
		return types.Layout{}, nil, err
	}
	sourceDir, err := paths.ResolveSourceDir(explicit, cfg.ProjectsDir, bootstrap)
	if err != nil {
		return types.Layout{}, nil, err
	}

	cfg, err = config.Load(config.LoadOptions{ConfigFile: opts.ConfigFile, SourceDir: sourceDir})
	if err != nil {
		return types.Layout{}, nil, err
	}
	cfg.Source = sourceDir
	if opts.Destination != "" {
		cfg.Destination = opts.Destination
	}
	if err := cfg.Validate(); err != nil {
		return types.Layout{}, nil, err
	}

	destDir, err := paths.ResolveDestination(cfg.Destination)
	if err != nil {
		return types.Layout{}, nil, err
	}
	cfg.Destination = destDir

	matcher, err := matchers.New(cfg.Patterns)
	if err != nil {
		return types.Layout{}, nil, err
	}

	if sourceDir == destDir {
		return types.Layout{}, nil, errors.Newf(errors.ErrInvalidInput,
			"source and destination are the same directory: %s", sourceDir)
	}

	logger.Debug().
		Str("source", sourceDir).
		Str("destination", destDir).
		Str("projects", cfg.ProjectsDir).
		Msg("Resolved layout")

	return types.Layout{
		SourceDir:    sourceDir,
		DestDir:      destDir,
		ProjectsDir:  cfg.ProjectsDir,
		BackupSuffix: cfg.BackupSuffix,
		Matcher:      matcher,
	}, cfg, nil
}
