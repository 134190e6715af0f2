// Package version holds build information stamped in at release time.
package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/sublsync/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/sublsync/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/sublsync/internal/version.Date={{.Date}}
)
