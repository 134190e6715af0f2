// Package filesystem provides filesystem implementations for sublsync.
//
// This package contains the OS implementation of the types.FS interface.
// Symlink replacement and file writes go through renameio so an existing
// destination entry is swapped atomically rather than removed first.
package filesystem
