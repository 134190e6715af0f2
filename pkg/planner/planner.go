// Package planner turns a Layout into the ordered list of operations a
// sync performs. Plan only reads the filesystem, so it backs both the
// dry-run preview and the real run.
package planner

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/filesystem"
	"github.com/arthur-debert/sublsync/pkg/logging"
	"github.com/arthur-debert/sublsync/pkg/types"
)

// Plan returns the operations that bring the destination in line with
// the source, in execution order:
//
//  1. create the destination projects directory
//  2. create the source projects directory, if adoption needs it
//  3. adopt real project files found in the destination projects directory
//  4. link settings and keymap files of the source root
//  5. link project files of the source projects directory, adopted ones included
//
// A project file that would be adopted over an existing source file of
// the same name fails the whole plan with ErrAdoptConflict.
func Plan(fs types.FS, layout types.Layout) ([]types.Operation, error) {
	logger := logging.GetLogger("planner")
	done := logging.LogOperationStart(logger, "plan")
	defer done()

	if err := ValidateLayout(layout); err != nil {
		return nil, err
	}

	rootNames, err := listDir(fs, layout.SourceDir)
	if err != nil {
		return nil, err
	}
	if rootNames == nil {
		return nil, errors.Newf(errors.ErrNotFound, "source directory %s does not exist", layout.SourceDir).
			WithDetail("path", layout.SourceDir)
	}

	sourceProjectNames, err := listDir(fs, layout.SourceProjects())
	if err != nil {
		return nil, err
	}
	sourceProjectsExist := sourceProjectNames != nil

	adoptNames, err := orphanedProjects(fs, layout)
	if err != nil {
		return nil, err
	}

	ops := []types.Operation{{Type: types.OperationCreateDir, Target: layout.DestProjects()}}

	if len(adoptNames) > 0 {
		existing := make(map[string]bool, len(sourceProjectNames))
		for _, name := range sourceProjectNames {
			existing[name] = true
		}
		for _, name := range adoptNames {
			if existing[name] {
				return nil, errors.Newf(errors.ErrAdoptConflict,
					"%s exists both as a real file in %s and in %s",
					name, layout.DestProjects(), layout.SourceProjects()).
					WithDetail("name", name)
			}
		}

		if !sourceProjectsExist {
			ops = append(ops, types.Operation{Type: types.OperationCreateDir, Target: layout.SourceProjects()})
		}
		for _, name := range adoptNames {
			ops = append(ops, types.Operation{
				Type:   types.OperationAdopt,
				Kind:   types.KindProject,
				Source: filepath.Join(layout.SourceProjects(), name),
				Target: filepath.Join(layout.DestProjects(), name),
			})
		}
	}

	for _, name := range rootNames {
		kind, ok := layout.Matcher.Match(name)
		if !ok || (kind != types.KindSettings && kind != types.KindKeymap) {
			continue
		}
		ops = append(ops, types.Operation{
			Type:   types.OperationSymlink,
			Kind:   kind,
			Source: filepath.Join(layout.SourceDir, name),
			Target: filepath.Join(layout.DestDir, name),
		})
	}

	projectNames := append([]string{}, sourceProjectNames...)
	projectNames = append(projectNames, adoptNames...)
	sort.Strings(projectNames)
	for _, name := range projectNames {
		if !layout.Matcher.MatchKind(types.KindProject, name) {
			continue
		}
		ops = append(ops, types.Operation{
			Type:   types.OperationSymlink,
			Kind:   types.KindProject,
			Source: filepath.Join(layout.SourceProjects(), name),
			Target: filepath.Join(layout.DestProjects(), name),
		})
	}

	logger.Debug().
		Int("operations", len(ops)).
		Int("adoptions", len(adoptNames)).
		Msg("Plan built")
	return ops, nil
}

// ValidateLayout checks a layout is complete and its directories distinct
func ValidateLayout(layout types.Layout) error {
	switch {
	case layout.Matcher == nil:
		return errors.New(errors.ErrPlanInvalid, "layout has no matcher")
	case !filepath.IsAbs(layout.SourceDir):
		return errors.Newf(errors.ErrPlanInvalid, "source directory %q is not absolute", layout.SourceDir)
	case !filepath.IsAbs(layout.DestDir):
		return errors.Newf(errors.ErrPlanInvalid, "destination directory %q is not absolute", layout.DestDir)
	case filepath.Clean(layout.SourceDir) == filepath.Clean(layout.DestDir):
		return errors.Newf(errors.ErrPlanInvalid, "source and destination are the same directory %s", layout.SourceDir)
	case layout.ProjectsDir == "":
		return errors.New(errors.ErrPlanInvalid, "layout has no projects directory")
	}
	return nil
}

// orphanedProjects lists names in the destination projects directory that
// match the project pattern and are not symlinks
func orphanedProjects(fs types.FS, layout types.Layout) ([]string, error) {
	names, err := listDir(fs, layout.DestProjects())
	if err != nil {
		return nil, err
	}

	var out []string
	for _, name := range names {
		if !layout.Matcher.MatchKind(types.KindProject, name) {
			continue
		}
		path := filepath.Join(layout.DestProjects(), name)
		info, err := fs.Lstat(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", path)
		}
		if filesystem.IsSymlink(info) {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}

// listDir returns the sorted entry names of dir, or nil when dir does not exist
func listDir(fs types.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", dir).
			WithDetail("path", dir)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
