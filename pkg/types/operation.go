package types

import "fmt"

// OperationType defines the type of file system operation
type OperationType string

const (
	// OperationCreateDir creates a directory and its parents
	OperationCreateDir OperationType = "create_dir"

	// OperationAdopt moves a real file from the destination into the source tree
	OperationAdopt OperationType = "adopt"

	// OperationSymlink links Target to Source
	OperationSymlink OperationType = "symlink"
)

// Operation represents a single planned file system change
type Operation struct {
	Type OperationType `json:"type" yaml:"type"`

	// Kind is the tracked file kind; empty for directory operations
	Kind FileKind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// Source is the canonical path (link target, or move destination for adopt)
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Target is the path being created or moved away from
	Target string `json:"target" yaml:"target"`
}

// Description returns a one-line human readable form of the operation
func (o Operation) Description() string {
	switch o.Type {
	case OperationCreateDir:
		return fmt.Sprintf("create directory %s", o.Target)
	case OperationAdopt:
		return fmt.Sprintf("adopt %s into %s", o.Target, o.Source)
	case OperationSymlink:
		return fmt.Sprintf("link %s -> %s", o.Target, o.Source)
	default:
		return fmt.Sprintf("%s %s", o.Type, o.Target)
	}
}
