// Package testutil provides test environments for sublsync.
//
// A TestEnvironment is an isolated temp directory holding a fake home,
// a source tree and a destination tree, with HOME and the XDG variables
// pointed inside it so no test touches the real user configuration.
package testutil
