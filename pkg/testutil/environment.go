// pkg/testutil/environment.go
// DEPENDENCIES: filesystem, matchers, types
// PURPOSE: Build isolated source/destination trees for sync tests

package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/sublsync/pkg/filesystem"
	"github.com/arthur-debert/sublsync/pkg/matchers"
	"github.com/arthur-debert/sublsync/pkg/types"
)

// ProjectsDir is the projects subdirectory used by test layouts
const ProjectsDir = "Projects"

// TestEnvironment provides an isolated home with source and destination trees
type TestEnvironment struct {
	Root      string
	HomeDir   string
	SourceDir string
	DestDir   string

	FS types.FS

	t *testing.T
}

// NewTestEnvironment creates the trees and isolates the process environment.
// The destination directory itself is not created.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	// macOS temp dirs live behind a /var -> /private/var symlink
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	env := &TestEnvironment{
		Root:      root,
		HomeDir:   filepath.Join(root, "home"),
		SourceDir: filepath.Join(root, "dotfiles", "sublime"),
		DestDir:   filepath.Join(root, "home", "Library", "Application Support", "Sublime Text 3", "Packages", "User"),
		FS:        filesystem.NewOS(),
		t:         t,
	}

	env.mkdir(env.HomeDir)
	env.mkdir(env.SourceDir)

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("SUBLSYNC_CONFIG_DIR", filepath.Join(root, "config", "sublsync"))
	t.Setenv("NO_COLOR", "1")
	for _, name := range []string{"SUBLSYNC_SOURCE", "SUBLSYNC_DESTINATION", "SUBLSYNC_PROJECTS_DIR"} {
		t.Setenv(name, "")
		_ = os.Unsetenv(name)
	}

	return env
}

// Layout returns the default layout over the environment's trees
func (e *TestEnvironment) Layout() types.Layout {
	return types.Layout{
		SourceDir:    e.SourceDir,
		DestDir:      e.DestDir,
		ProjectsDir:  ProjectsDir,
		BackupSuffix: ".sublsync-backup",
		Matcher:      matchers.Default(),
	}
}

// SourcePath joins parts under the source tree
func (e *TestEnvironment) SourcePath(parts ...string) string {
	return filepath.Join(append([]string{e.SourceDir}, parts...)...)
}

// DestPath joins parts under the destination tree
func (e *TestEnvironment) DestPath(parts ...string) string {
	return filepath.Join(append([]string{e.DestDir}, parts...)...)
}

// WriteSource writes a file relative to the source tree
func (e *TestEnvironment) WriteSource(rel, content string) string {
	e.t.Helper()
	return e.write(e.SourcePath(rel), content)
}

// WriteDest writes a real file relative to the destination tree
func (e *TestEnvironment) WriteDest(rel, content string) string {
	e.t.Helper()
	return e.write(e.DestPath(rel), content)
}

// LinkDest creates a symlink at rel under the destination pointing at target
func (e *TestEnvironment) LinkDest(rel, target string) string {
	e.t.Helper()
	path := e.DestPath(rel)
	e.mkdir(filepath.Dir(path))
	if err := os.Symlink(target, path); err != nil {
		e.t.Fatalf("symlink %s: %v", path, err)
	}
	return path
}

// MkdirDest creates a directory under the destination tree
func (e *TestEnvironment) MkdirDest(rel string) string {
	e.t.Helper()
	path := e.DestPath(rel)
	e.mkdir(path)
	return path
}

// Snapshot describes every entry under dir, keyed by relative path. Regular
// files map to their content, symlinks to "-> target", directories to "/".
func (e *TestEnvironment) Snapshot(dir string) map[string]string {
	e.t.Helper()
	out := map[string]string{}
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(dir, path)
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			out[rel] = "-> " + target
		case info.IsDir():
			out[rel] = "/"
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			out[rel] = string(data)
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		e.t.Fatalf("snapshot %s: %v", dir, err)
	}
	return out
}

// Names lists the entry names of dir, sorted
func (e *TestEnvironment) Names(dir string) []string {
	e.t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		e.t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

func (e *TestEnvironment) write(path, content string) string {
	e.t.Helper()
	e.mkdir(filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func (e *TestEnvironment) mkdir(path string) {
	e.t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		e.t.Fatalf("mkdir %s: %v", path, err)
	}
}
