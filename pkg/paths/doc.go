// Package paths provides centralized path handling for sublsync.
//
// It resolves the two directories a sync works on:
//
//   - Source: the source-controlled directory holding the canonical
//     settings, keymap and project files. Taken from the --source flag or
//     SUBLSYNC_SOURCE, else the directory holding the sublsync binary when
//     it contains tracked files, else the current working directory.
//   - Destination: Sublime Text's user package directory, fixed by
//     convention to DefaultDestination and expanded against the home
//     directory.
//
// It also locates sublsync's own XDG config file.
package paths
