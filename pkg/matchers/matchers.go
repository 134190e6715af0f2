// Package matchers decides which directory entries are tracked files.
//
// Each tracked kind has one glob pattern matched against the entry name
// only, case-sensitively. Entry type is never consulted, so a directory
// named like a project file matches too.
package matchers

import (
	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
)

// Default patterns for the three tracked kinds
const (
	DefaultSettingsPattern = "*.sublime-settings"
	DefaultKeymapPattern   = "*.sublime-keymap"
	DefaultProjectPattern  = "*.sublime-project"
)

// kindOrder is the order in which kinds are tried by Match
var kindOrder = []types.FileKind{types.KindSettings, types.KindKeymap, types.KindProject}

// Patterns holds one glob per tracked kind
type Patterns struct {
	Settings string `koanf:"settings" toml:"settings"`
	Keymap   string `koanf:"keymap" toml:"keymap"`
	Project  string `koanf:"project" toml:"project"`
}

// DefaultPatterns returns the stock Sublime Text suffix patterns
func DefaultPatterns() Patterns {
	return Patterns{
		Settings: DefaultSettingsPattern,
		Keymap:   DefaultKeymapPattern,
		Project:  DefaultProjectPattern,
	}
}

func (p Patterns) forKind(kind types.FileKind) string {
	switch kind {
	case types.KindSettings:
		return p.Settings
	case types.KindKeymap:
		return p.Keymap
	case types.KindProject:
		return p.Project
	}
	return ""
}

// Validate checks every pattern is present and well formed
func (p Patterns) Validate() error {
	for _, kind := range kindOrder {
		pattern := p.forKind(kind)
		if pattern == "" {
			return errors.Newf(errors.ErrConfigValid, "%s pattern is empty", kind).
				WithDetail("kind", string(kind))
		}
		if !doublestar.ValidatePattern(pattern) {
			return errors.Newf(errors.ErrConfigValid, "%s pattern %q is not a valid glob", kind, pattern).
				WithDetail("kind", string(kind)).
				WithDetail("pattern", pattern)
		}
	}
	return nil
}

// GlobMatcher implements types.Matcher over a validated Patterns set
type GlobMatcher struct {
	patterns Patterns
}

// New validates patterns and returns a matcher for them
func New(patterns Patterns) (*GlobMatcher, error) {
	if err := patterns.Validate(); err != nil {
		return nil, err
	}
	return &GlobMatcher{patterns: patterns}, nil
}

// Default returns a matcher for DefaultPatterns
func Default() *GlobMatcher {
	return &GlobMatcher{patterns: DefaultPatterns()}
}

// Match returns the first kind whose pattern matches name
func (m *GlobMatcher) Match(name string) (types.FileKind, bool) {
	for _, kind := range kindOrder {
		if m.MatchKind(kind, name) {
			return kind, true
		}
	}
	return "", false
}

// MatchKind reports whether name matches the pattern of kind
func (m *GlobMatcher) MatchKind(kind types.FileKind, name string) bool {
	pattern := m.patterns.forKind(kind)
	if pattern == "" {
		return false
	}
	// Patterns were validated, so ErrBadPattern cannot occur.
	ok, _ := doublestar.Match(pattern, name)
	return ok
}

// Patterns returns the patterns this matcher was built from
func (m *GlobMatcher) Patterns() Patterns {
	return m.patterns
}

var _ types.Matcher = (*GlobMatcher)(nil)
