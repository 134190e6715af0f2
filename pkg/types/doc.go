// Package types defines the core types shared across sublsync: the
// Layout describing where tracked files live, the planned Operations
// derived from it, and the ActionResults produced when they run.
package types
