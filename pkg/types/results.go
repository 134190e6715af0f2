package types

import (
	"fmt"
	"strings"
)

// ActionStatus is the outcome of executing (or previewing) an operation
type ActionStatus string

const (
	ActionPlanned       ActionStatus = "planned"
	ActionCreated       ActionStatus = "created"
	ActionExists        ActionStatus = "exists"
	ActionAdopted       ActionStatus = "adopted"
	ActionLinked        ActionStatus = "linked"
	ActionRelinked      ActionStatus = "relinked"
	ActionAlreadyLinked ActionStatus = "already_linked"
	ActionBackedUp      ActionStatus = "backed_up"
	ActionConflict      ActionStatus = "conflict"
	ActionError         ActionStatus = "error"
)

// ActionResult records what happened to one operation
type ActionResult struct {
	Operation Operation    `json:"operation" yaml:"operation"`
	Status    ActionStatus `json:"status" yaml:"status"`
	Message   string       `json:"message,omitempty" yaml:"message,omitempty"`

	// BackupPath is set when a real file was moved aside
	BackupPath string `json:"backup_path,omitempty" yaml:"backup_path,omitempty"`

	Error error `json:"-" yaml:"-"`
}

// SyncResult is the outcome of a whole run
type SyncResult struct {
	SourceDir string         `json:"source_dir" yaml:"source_dir"`
	DestDir   string         `json:"dest_dir" yaml:"dest_dir"`
	DryRun    bool           `json:"dry_run" yaml:"dry_run"`
	Actions   []ActionResult `json:"actions" yaml:"actions"`
}

// Count returns how many actions ended with the given status
func (r *SyncResult) Count(status ActionStatus) int {
	n := 0
	for _, a := range r.Actions {
		if a.Status == status {
			n++
		}
	}
	return n
}

// Conflicts returns the actions that were left untouched because of a conflict
func (r *SyncResult) Conflicts() []ActionResult {
	var out []ActionResult
	for _, a := range r.Actions {
		if a.Status == ActionConflict {
			out = append(out, a)
		}
	}
	return out
}

var summaryOrder = []struct {
	status ActionStatus
	label  string
}{
	{ActionCreated, "created"},
	{ActionAdopted, "adopted"},
	{ActionLinked, "linked"},
	{ActionRelinked, "relinked"},
	{ActionBackedUp, "backed up"},
	{ActionAlreadyLinked, "already linked"},
	{ActionConflict, "conflict"},
	{ActionError, "failed"},
}

// Summary is a one-line count of the actions by outcome
func (r *SyncResult) Summary() string {
	if r.DryRun {
		n := r.Count(ActionPlanned)
		if n == 1 {
			return "1 operation planned"
		}
		return fmt.Sprintf("%d operations planned", n)
	}

	var parts []string
	for _, s := range summaryOrder {
		if n := r.Count(s.status); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, s.label))
		}
	}
	if len(parts) == 0 {
		return "nothing to do"
	}
	return strings.Join(parts, ", ")
}
