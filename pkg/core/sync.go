package core

import (
	"context"

	"github.com/arthur-debert/sublsync/pkg/executor"
	"github.com/arthur-debert/sublsync/pkg/filesystem"
	"github.com/arthur-debert/sublsync/pkg/logging"
	"github.com/arthur-debert/sublsync/pkg/planner"
	"github.com/arthur-debert/sublsync/pkg/types"
)

// SyncOptions contains the inputs of a sync run
type SyncOptions struct {
	Layout types.Layout
	DryRun bool
	Force  bool

	// FileSystem defaults to the real filesystem
	FileSystem types.FS
}

// Sync plans and applies the links for opts.Layout. The result is returned
// even when err is non-nil and lists every operation attempted.
func Sync(ctx context.Context, opts SyncOptions) (*types.SyncResult, error) {
	logger := logging.GetLogger("core.sync")
	done := logging.LogOperationStart(logger, "sync")
	defer done()

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	result := &types.SyncResult{
		SourceDir: opts.Layout.SourceDir,
		DestDir:   opts.Layout.DestDir,
		DryRun:    opts.DryRun,
		Actions:   []types.ActionResult{},
	}

	ops, err := planner.Plan(fs, opts.Layout)
	if err != nil {
		return result, err
	}
	logger.Info().Int("operations", len(ops)).Bool("dryRun", opts.DryRun).Msg("Plan ready")

	exec := executor.New(fs, executor.Options{
		DryRun:       opts.DryRun,
		Force:        opts.Force,
		BackupSuffix: opts.Layout.BackupSuffix,
	})
	actions, err := exec.Execute(ctx, ops)
	result.Actions = append(result.Actions, actions...)
	if err != nil {
		return result, err
	}

	logger.Info().
		Int("linked", result.Count(types.ActionLinked)+result.Count(types.ActionRelinked)+result.Count(types.ActionBackedUp)).
		Int("unchanged", result.Count(types.ActionAlreadyLinked)).
		Int("adopted", result.Count(types.ActionAdopted)).
		Msg("Sync complete")
	return result, nil
}
