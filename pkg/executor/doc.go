// Package executor applies planned operations to the filesystem.
//
// Each planned operation becomes one synthfs custom operation and the batch
// runs through a synthfs pipeline with rollback disabled. Operations run
// one at a time in plan order with no retries. The first
// hard failure (a directory that cannot be created, a move that fails, a
// link the filesystem rejects) stops the run; nothing already done is
// rolled back. Link conflicts are not hard failures: every remaining
// operation still runs and the conflicts are returned together as one
// ErrSymlinkConflict error at the end.
//
// In dry-run mode no filesystem call is made and each operation is
// reported as planned.
package executor
