// Package core wires configuration, planning and execution into the
// operations exposed by the command line.
//
// # Sync
//
// A sync run goes through three stages:
//
//  1. ResolveLayout loads the layered configuration, resolves the source
//     and destination directories and builds the file matcher.
//  2. planner.Plan reads both trees and returns the ordered operations:
//     the destination projects directory, adoption of real project files
//     found there, and one symlink per tracked source file.
//  3. The executor applies the operations, or only reports them when
//     running dry.
//
// Re-running a sync over an unchanged tree is a no-op: every link is
// reported as already linked and nothing on disk changes.
//
// # Status
//
// Status inspects the same trees without planning or executing anything.
package core
