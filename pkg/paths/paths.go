package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/types"
)

// Environment variable names
const (
	// EnvSource overrides the source directory
	EnvSource = "SUBLSYNC_SOURCE"

	// EnvConfigDir overrides the XDG config directory for sublsync
	EnvConfigDir = "SUBLSYNC_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed locations. The destination is a convention of the application,
// not something discovered at runtime.
const (
	// DefaultDestination is Sublime Text 3's user package directory on macOS
	DefaultDestination = "~/Library/Application Support/Sublime Text 3/Packages/User"

	// DefaultProjectsDir is the project subdirectory name on both sides
	DefaultProjectsDir = "Projects"

	// AppDirName is the directory name for sublsync-specific files
	AppDirName = "sublsync"

	// ConfigFileName is the user configuration file under the XDG config dir
	ConfigFileName = "config.toml"

	// SourceConfigFile is an optional per-source configuration file
	SourceConfigFile = ".sublsync.toml"
)

// executablePath is swapped in tests
var executablePath = os.Executable

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is not expanded
	return path
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}

// NormalizePath expands home, makes the path absolute and cleans it
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}
	return filepath.Clean(abs), nil
}

// ResolveDestination returns the absolute destination directory. An empty
// value selects DefaultDestination.
func ResolveDestination(dest string) (string, error) {
	if dest == "" {
		dest = DefaultDestination
	}
	return NormalizePath(dest)
}

// ResolveSourceDir determines the source directory using the following priority:
// 1. explicit (flag or config value), if non-empty
// 2. SUBLSYNC_SOURCE environment variable
// 3. the directory containing the running binary, if it holds tracked files
// 4. the current working directory
//
// projectsDir names the projects subdirectory; empty means DefaultProjectsDir.
func ResolveSourceDir(explicit, projectsDir string, matcher types.Matcher) (string, error) {
	if explicit != "" {
		return NormalizePath(explicit)
	}
	if env := os.Getenv(EnvSource); env != "" {
		return NormalizePath(env)
	}

	if exe, err := executablePath(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dir := filepath.Dir(exe)
		if looksLikeSource(dir, projectsDir, matcher) {
			return filepath.Clean(dir), nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}
	return cwd, nil
}

// looksLikeSource reports whether dir has a projects subdirectory or a
// settings or keymap file
func looksLikeSource(dir, projectsDir string, matcher types.Matcher) bool {
	if projectsDir == "" {
		projectsDir = DefaultProjectsDir
	}
	if info, err := os.Stat(filepath.Join(dir, projectsDir)); err == nil && info.IsDir() {
		return true
	}
	if matcher == nil {
		return false
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if kind, ok := matcher.Match(e.Name()); ok && kind != types.KindProject {
			return true
		}
	}
	return false
}

// ConfigDir returns the XDG config directory for sublsync
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// UserConfigPath returns the path of the user configuration file
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// SourceConfigPath returns the per-source configuration file path
func SourceConfigPath(sourceDir string) string {
	return filepath.Join(sourceDir, SourceConfigFile)
}

// ValidateProjectsDir checks the projects subdirectory is a single relative name
func ValidateProjectsDir(name string) error {
	switch {
	case name == "":
		return errors.New(errors.ErrConfigValid, "projects directory name is empty")
	case filepath.IsAbs(name):
		return errors.Newf(errors.ErrConfigValid, "projects directory %q must be relative", name)
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return errors.Newf(errors.ErrConfigValid, "projects directory %q must be a single name", name)
	case name == "." || name == "..":
		return errors.Newf(errors.ErrConfigValid, "projects directory %q is not allowed", name)
	}
	return nil
}
