package types

import "path/filepath"

// FileKind identifies which of the tracked suffix patterns a name matched
type FileKind string

const (
	KindSettings FileKind = "settings"
	KindKeymap   FileKind = "keymap"
	KindProject  FileKind = "project"
)

// Matcher reports which kind of tracked file a name is, if any
type Matcher interface {
	Match(name string) (FileKind, bool)
	MatchKind(kind FileKind, name string) bool
}

// Layout describes the two trees being synchronized
type Layout struct {
	// SourceDir holds the canonical, source-controlled files
	SourceDir string

	// DestDir is the application's configuration directory
	DestDir string

	// ProjectsDir is the name of the project subdirectory on both sides
	ProjectsDir string

	// BackupSuffix is appended to real files moved aside by a forced link
	BackupSuffix string

	Matcher Matcher
}

// SourceProjects returns the project subdirectory of the source tree
func (l Layout) SourceProjects() string {
	return filepath.Join(l.SourceDir, l.ProjectsDir)
}

// DestProjects returns the project subdirectory of the destination tree
func (l Layout) DestProjects() string {
	return filepath.Join(l.DestDir, l.ProjectsDir)
}
