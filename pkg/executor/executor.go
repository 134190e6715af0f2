package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/linker"
	"github.com/arthur-debert/sublsync/pkg/logging"
	"github.com/arthur-debert/sublsync/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"
)

// Options configures an Executor
type Options struct {
	DryRun       bool
	Force        bool
	BackupSuffix string
}

// Executor runs operations against a filesystem
type Executor struct {
	fs     types.FS
	sfs    filesystem.FullFileSystem
	linker *linker.Linker
	dryRun bool
	logger zerolog.Logger
}

// New creates an Executor over fs
func New(fs types.FS, opts Options) *Executor {
	// Plans carry absolute paths
	osfs := filesystem.NewOSFileSystem("/")
	pathAwareFS := synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths()

	return &Executor{
		fs:     fs,
		sfs:    pathAwareFS,
		linker: linker.New(fs, linker.Options{Force: opts.Force, BackupSuffix: opts.BackupSuffix}),
		dryRun: opts.DryRun,
		logger: logging.GetLogger("executor"),
	}
}

// Execute runs ops in order. The returned results cover every operation
// attempted, including the failing one, even when an error is returned.
func (e *Executor) Execute(ctx context.Context, ops []types.Operation) ([]types.ActionResult, error) {
	results := make([]types.ActionResult, 0, len(ops))

	if e.dryRun {
		e.logger.Info().Int("operations", len(ops)).Msg("Dry run mode - operations would be executed")
		for _, op := range ops {
			results = append(results, types.ActionResult{
				Operation: op,
				Status:    types.ActionPlanned,
				Message:   "would " + op.Description(),
			})
		}
		return results, nil
	}

	if len(ops) == 0 {
		return results, nil
	}
	if err := ctx.Err(); err != nil {
		return results, errors.Wrap(err, errors.ErrInternal, "sync interrupted")
	}

	var failure error
	sfs := synthfs.New()
	batch := make([]synthfs.Operation, 0, len(ops))
	for i, op := range ops {
		id := fmt.Sprintf("%03d_%s_%s", i, op.Type, filepath.Base(op.Target))
		batch = append(batch, sfs.CustomOperationWithID(id, func(ctx context.Context, fs filesystem.FileSystem) error {
			if failure != nil {
				return nil
			}
			if err := ctx.Err(); err != nil {
				failure = errors.Wrap(err, errors.ErrInternal, "sync interrupted")
				return failure
			}

			res := e.apply(op, fs)
			results = append(results, res)
			if res.Status == types.ActionError {
				failure = res.Error
				return failure
			}
			return nil
		}))
	}

	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = false

	e.logger.Debug().Int("operations", len(batch)).Msg("Executing operations")
	result, err := synthfs.RunWithOptions(ctx, e.sfs, options, batch...)
	if failure != nil {
		return results, failure
	}
	if err != nil {
		return results, errors.Wrap(err, errors.ErrInternal, "failed to execute operations")
	}
	if result != nil {
		e.logger.Debug().Int("completed", len(result.GetOperations())).Msg("Operations finished")
	}

	if n := countStatus(results, types.ActionConflict); n > 0 {
		err := errors.Newf(errors.ErrSymlinkConflict, "%d destination path(s) are occupied by real files", n)
		for _, r := range results {
			if r.Status == types.ActionConflict {
				err.WithDetail(r.Operation.Target, r.Message)
			}
		}
		return results, err
	}

	e.logger.Info().Int("operations", len(ops)).Msg("All operations executed successfully")
	return results, nil
}

// apply performs a single operation
func (e *Executor) apply(op types.Operation, fs filesystem.FileSystem) types.ActionResult {
	switch op.Type {
	case types.OperationCreateDir:
		return e.createDir(op, fs)
	case types.OperationAdopt:
		return e.adopt(op)
	case types.OperationSymlink:
		res := e.linker.Link(op.Source, op.Target)
		res.Operation = op
		return res
	}
	return types.ActionResult{
		Operation: op,
		Status:    types.ActionError,
		Error:     errors.Newf(errors.ErrPlanInvalid, "unsupported operation type: %s", op.Type),
	}
}

func (e *Executor) createDir(op types.Operation, fs filesystem.FileSystem) types.ActionResult {
	res := types.ActionResult{Operation: op}

	if info, err := e.fs.Stat(op.Target); err == nil && info.IsDir() {
		res.Status = types.ActionExists
		res.Message = fmt.Sprintf("directory %s exists", op.Target)
		return res
	}

	if err := fs.MkdirAll(op.Target, 0755); err != nil {
		res.Status = types.ActionError
		res.Error = errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", op.Target)
		res.Message = res.Error.Error()
		return res
	}

	res.Status = types.ActionCreated
	res.Message = fmt.Sprintf("created directory %s", op.Target)
	e.logger.Info().Str("path", op.Target).Msg("Created directory")
	return res
}

// adopt moves op.Target (a real file in the destination) to op.Source
func (e *Executor) adopt(op types.Operation) types.ActionResult {
	res := types.ActionResult{Operation: op}

	if _, err := e.fs.Lstat(op.Source); err == nil {
		res.Status = types.ActionError
		res.Error = errors.Newf(errors.ErrAdoptConflict, "cannot adopt %s: %s already exists", op.Target, op.Source).
			WithDetail("source", op.Source)
		res.Message = res.Error.Error()
		return res
	} else if !os.IsNotExist(err) {
		res.Status = types.ActionError
		res.Error = errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", op.Source)
		res.Message = res.Error.Error()
		return res
	}

	if err := e.fs.Rename(op.Target, op.Source); err != nil {
		res.Status = types.ActionError
		res.Error = errors.Wrapf(err, errors.ErrAdoptMove, "cannot move %s to %s", op.Target, op.Source)
		res.Message = res.Error.Error()
		return res
	}

	res.Status = types.ActionAdopted
	res.Message = fmt.Sprintf("adopted %s into %s", op.Target, op.Source)
	e.logger.Info().Str("from", op.Target).Str("to", op.Source).Msg("Adopted project file")
	return res
}

func countStatus(results []types.ActionResult, status types.ActionStatus) int {
	n := 0
	for _, r := range results {
		if r.Status == status {
			n++
		}
	}
	return n
}
