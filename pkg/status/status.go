// Package status inspects the source and destination trees and reports
// the link state of every tracked name without changing anything.
package status

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/filesystem"
	"github.com/arthur-debert/sublsync/pkg/linker"
	"github.com/arthur-debert/sublsync/pkg/planner"
	"github.com/arthur-debert/sublsync/pkg/types"
)

// Inspect classifies every tracked file found in either tree
func Inspect(fs types.FS, layout types.Layout) (*types.StatusReport, error) {
	if err := planner.ValidateLayout(layout); err != nil {
		return nil, err
	}

	report := &types.StatusReport{
		SourceDir: layout.SourceDir,
		DestDir:   layout.DestDir,
		Files:     []types.FileStatus{},
	}

	rootKinds := []types.FileKind{types.KindSettings, types.KindKeymap}
	projectKinds := []types.FileKind{types.KindProject}

	if err := inspectPair(fs, layout, layout.SourceDir, layout.DestDir, rootKinds, report); err != nil {
		return nil, err
	}
	if err := inspectPair(fs, layout, layout.SourceProjects(), layout.DestProjects(), projectKinds, report); err != nil {
		return nil, err
	}

	sort.SliceStable(report.Files, func(i, j int) bool {
		return report.Files[i].Target < report.Files[j].Target
	})
	return report, nil
}

// inspectPair compares one source directory with its destination twin
func inspectPair(fs types.FS, layout types.Layout, srcDir, dstDir string, kinds []types.FileKind, report *types.StatusReport) error {
	srcNames, err := trackedNames(fs, layout.Matcher, srcDir, kinds)
	if err != nil {
		return err
	}
	dstNames, err := trackedNames(fs, layout.Matcher, dstDir, kinds)
	if err != nil {
		return err
	}

	for name, kind := range srcNames {
		fsStatus, err := classify(fs, kind, name, filepath.Join(srcDir, name), filepath.Join(dstDir, name))
		if err != nil {
			return err
		}
		report.Files = append(report.Files, fsStatus)
	}

	for name, kind := range dstNames {
		if _, ok := srcNames[name]; ok {
			continue
		}
		source := filepath.Join(srcDir, name)
		target := filepath.Join(dstDir, name)
		info, err := fs.Lstat(target)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", target)
		}

		if !filesystem.IsSymlink(info) {
			// Real files are only actionable in the projects directory.
			if kind == types.KindProject {
				report.Files = append(report.Files, types.FileStatus{
					Name: name, Kind: kind, State: types.StateUnadopted, Source: source, Target: target,
				})
			}
			continue
		}

		current, err := fs.Readlink(target)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %s", target)
		}
		if !pointsInto(target, current, layout.SourceDir) {
			continue
		}
		state := types.StateWrongTarget
		if _, err := fs.Stat(target); os.IsNotExist(err) {
			state = types.StateDangling
		} else if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve link %s", target)
		}
		report.Files = append(report.Files, types.FileStatus{
			Name: name, Kind: kind, State: state, Source: source, Target: target, LinkTarget: current,
		})
	}
	return nil
}

func classify(fs types.FS, kind types.FileKind, name, source, target string) (types.FileStatus, error) {
	st := types.FileStatus{Name: name, Kind: kind, Source: source, Target: target}

	info, err := fs.Lstat(target)
	switch {
	case os.IsNotExist(err):
		st.State = types.StateMissing
		return st, nil
	case err != nil:
		return st, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", target)
	case !filesystem.IsSymlink(info):
		st.State = types.StateConflict
		return st, nil
	}

	current, err := fs.Readlink(target)
	if err != nil {
		return st, errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %s", target)
	}
	st.LinkTarget = current
	if linker.SameTarget(target, current, source) {
		st.State = types.StateLinked
	} else {
		st.State = types.StateWrongTarget
	}
	return st, nil
}

// trackedNames maps matching entry names of dir to their kind; a missing
// dir has none
func trackedNames(fs types.FS, matcher types.Matcher, dir string, kinds []types.FileKind) (map[string]types.FileKind, error) {
	out := map[string]types.FileKind{}
	entries, err := fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", dir)
	}
	for _, e := range entries {
		for _, kind := range kinds {
			if matcher.MatchKind(kind, e.Name()) {
				out[e.Name()] = kind
				break
			}
		}
	}
	return out, nil
}

// pointsInto reports whether the link at linkPath with content current
// resolves to somewhere under dir
func pointsInto(linkPath, current, dir string) bool {
	if !filepath.IsAbs(current) {
		current = filepath.Join(filepath.Dir(linkPath), current)
	}
	rel, err := filepath.Rel(dir, filepath.Clean(current))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
