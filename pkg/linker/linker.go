// Package linker creates the destination symlinks.
//
// Link is the single place deciding what happens when the destination
// path is already occupied:
//
//   - nothing there: create the link
//   - a link to the same source: leave it
//   - a link anywhere else, dangling or not: replace it
//   - a real file or directory: report a conflict, or with force move it
//     aside to <name><backup suffix> and link
//
// Every decision is logged at info level.
package linker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/filesystem"
	"github.com/arthur-debert/sublsync/pkg/logging"
	"github.com/arthur-debert/sublsync/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultBackupSuffix is used when Options.BackupSuffix is empty
const DefaultBackupSuffix = ".sublsync-backup"

// Options configures a Linker
type Options struct {
	// Force replaces real files after moving them aside
	Force bool

	// BackupSuffix names the moved-aside copy of a replaced real file
	BackupSuffix string
}

// Linker creates symlinks on a filesystem following the package policy
type Linker struct {
	fs     types.FS
	opts   Options
	logger zerolog.Logger
}

// New returns a Linker over fs
func New(fs types.FS, opts Options) *Linker {
	if opts.BackupSuffix == "" {
		opts.BackupSuffix = DefaultBackupSuffix
	}
	return &Linker{
		fs:     fs,
		opts:   opts,
		logger: logging.GetLogger("linker"),
	}
}

// Link makes dest a symlink to source. The returned result has status
// ActionError and a non-nil Error only for filesystem failures; a
// conflict is reported through the status alone.
func (l *Linker) Link(source, dest string) types.ActionResult {
	op := types.Operation{Type: types.OperationSymlink, Source: source, Target: dest}
	result := types.ActionResult{Operation: op}

	info, err := l.fs.Lstat(dest)
	switch {
	case os.IsNotExist(err):
		return l.create(result)
	case err != nil:
		return l.fail(result, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", dest))
	case filesystem.IsSymlink(info):
		return l.relink(result)
	default:
		return l.occupied(result, info)
	}
}

func (l *Linker) create(result types.ActionResult) types.ActionResult {
	op := result.Operation
	if err := l.fs.Symlink(op.Source, op.Target); err != nil {
		return l.fail(result, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s", op.Target))
	}
	result.Status = types.ActionLinked
	result.Message = fmt.Sprintf("linked %s -> %s", op.Target, op.Source)
	l.logger.Info().Str("source", op.Source).Str("target", op.Target).Msg("Created symlink")
	return result
}

func (l *Linker) relink(result types.ActionResult) types.ActionResult {
	op := result.Operation
	current, err := l.fs.Readlink(op.Target)
	if err != nil {
		return l.fail(result, errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %s", op.Target))
	}

	if SameTarget(op.Target, current, op.Source) {
		result.Status = types.ActionAlreadyLinked
		result.Message = fmt.Sprintf("already linked %s -> %s", op.Target, op.Source)
		l.logger.Debug().Str("target", op.Target).Msg("Symlink already in place")
		return result
	}

	if err := l.replace(op.Source, op.Target); err != nil {
		return l.fail(result, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot relink %s", op.Target).
			WithDetail("previous", current))
	}
	result.Status = types.ActionRelinked
	result.Message = fmt.Sprintf("relinked %s -> %s (was -> %s)", op.Target, op.Source, current)
	l.logger.Info().
		Str("source", op.Source).
		Str("target", op.Target).
		Str("previous", current).
		Msg("Replaced symlink")
	return result
}

func (l *Linker) occupied(result types.ActionResult, info os.FileInfo) types.ActionResult {
	op := result.Operation
	what := "file"
	if info.IsDir() {
		what = "directory"
	}

	if !l.opts.Force {
		result.Status = types.ActionConflict
		result.Message = fmt.Sprintf("skipped %s: a real %s is in the way (use --force to back it up and link)", op.Target, what)
		l.logger.Warn().Str("target", op.Target).Str("kind", what).Msg("Destination occupied, not linking")
		return result
	}

	backup := op.Target + l.opts.BackupSuffix
	if _, err := l.fs.Lstat(backup); err == nil {
		result.Status = types.ActionConflict
		result.Message = fmt.Sprintf("skipped %s: backup %s already exists", op.Target, backup)
		l.logger.Warn().Str("target", op.Target).Str("backup", backup).Msg("Backup path taken, not linking")
		return result
	}

	if err := l.fs.Rename(op.Target, backup); err != nil {
		return l.fail(result, errors.Wrapf(err, errors.ErrFileAccess, "cannot move %s aside", op.Target))
	}
	if err := l.fs.Symlink(op.Source, op.Target); err != nil {
		return l.fail(result, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s", op.Target).
			WithDetail("backup", backup))
	}

	result.Status = types.ActionBackedUp
	result.BackupPath = backup
	result.Message = fmt.Sprintf("linked %s -> %s (previous %s saved as %s)", op.Target, op.Source, what, filepath.Base(backup))
	l.logger.Info().
		Str("source", op.Source).
		Str("target", op.Target).
		Str("backup", backup).
		Msg("Backed up existing entry and created symlink")
	return result
}

// replace swaps the symlink at target for one pointing at source
func (l *Linker) replace(source, target string) error {
	if r, ok := l.fs.(filesystem.SymlinkReplacer); ok {
		return r.ReplaceSymlink(source, target)
	}
	if err := l.fs.Remove(target); err != nil {
		return err
	}
	return l.fs.Symlink(source, target)
}

func (l *Linker) fail(result types.ActionResult, err *errors.SublsyncError) types.ActionResult {
	result.Status = types.ActionError
	result.Error = err
	result.Message = err.Error()
	l.logger.Error().Err(err).Str("target", result.Operation.Target).Msg("Symlink failed")
	return result
}

// SameTarget reports whether a link at linkPath whose content is current
// points at want. Relative link content is resolved against the link's
// directory.
func SameTarget(linkPath, current, want string) bool {
	if !filepath.IsAbs(current) {
		current = filepath.Join(filepath.Dir(linkPath), current)
	}
	return filepath.Clean(current) == filepath.Clean(want)
}
