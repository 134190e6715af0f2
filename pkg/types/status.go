package types

// LinkState classifies a tracked file when inspecting the two trees
type LinkState string

const (
	// StateLinked means the destination symlink points at the source file
	StateLinked LinkState = "linked"
	// StateMissing means the source file has no destination entry yet
	StateMissing LinkState = "missing"
	// StateConflict means a real file occupies the destination path
	StateConflict LinkState = "conflict"
	// StateWrongTarget means the destination symlink points elsewhere
	StateWrongTarget LinkState = "wrong_target"
	// StateDangling means a destination symlink into the source tree whose source is gone
	StateDangling LinkState = "dangling"
	// StateUnadopted means a real project file sits in the destination projects dir
	StateUnadopted LinkState = "unadopted"
)

// FileStatus is the state of one tracked name
type FileStatus struct {
	Name   string    `json:"name" yaml:"name"`
	Kind   FileKind  `json:"kind" yaml:"kind"`
	State  LinkState `json:"state" yaml:"state"`
	Source string    `json:"source" yaml:"source"`
	Target string    `json:"target" yaml:"target"`

	// LinkTarget is what the destination symlink currently points at
	LinkTarget string `json:"link_target,omitempty" yaml:"link_target,omitempty"`
}

// StatusReport lists every tracked name found on either side
type StatusReport struct {
	SourceDir string       `json:"source_dir" yaml:"source_dir"`
	DestDir   string       `json:"dest_dir" yaml:"dest_dir"`
	Files     []FileStatus `json:"files" yaml:"files"`
}

// InSync reports whether every tracked file is linked
func (r *StatusReport) InSync() bool {
	for _, f := range r.Files {
		if f.State != StateLinked {
			return false
		}
	}
	return true
}
