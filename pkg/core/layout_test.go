package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sublsync/pkg/core"
	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/testutil"
	"github.com/arthur-debert/sublsync/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestResolveLayout_Defaults(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	layout, cfg, err := core.ResolveLayout(core.LayoutOptions{Source: env.SourceDir})
	require.NoError(t, err)

	assert.Equal(t, env.SourceDir, layout.SourceDir)
	assert.Equal(t, env.DestDir, layout.DestDir)
	assert.Equal(t, "Projects", layout.ProjectsDir)
	assert.Equal(t, ".sublsync-backup", layout.BackupSuffix)
	assert.Equal(t, env.DestDir, cfg.Destination)

	kind, ok := layout.Matcher.Match("Preferences.sublime-settings")
	assert.True(t, ok)
	assert.Equal(t, types.KindSettings, kind)
}

func TestResolveLayout_SourceFromEnvironment(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	t.Setenv("SUBLSYNC_SOURCE", env.SourceDir)

	layout, _, err := core.ResolveLayout(core.LayoutOptions{})
	require.NoError(t, err)
	assert.Equal(t, env.SourceDir, layout.SourceDir)
}

func TestResolveLayout_SourceConfigFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	writeFile(t, env.SourcePath(".sublsync.toml"), "projects_dir = \"Workspaces\"\n")

	layout, _, err := core.ResolveLayout(core.LayoutOptions{Source: env.SourceDir})
	require.NoError(t, err)
	assert.Equal(t, "Workspaces", layout.ProjectsDir)
	assert.Equal(t, env.SourcePath("Workspaces"), layout.SourceProjects())
}

func TestResolveLayout_DestinationPrecedence(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	writeFile(t, filepath.Join(env.Root, "config", "sublsync", "config.toml"),
		"destination = \"~/from-user-config\"\n")

	layout, _, err := core.ResolveLayout(core.LayoutOptions{Source: env.SourceDir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.HomeDir, "from-user-config"), layout.DestDir)

	t.Setenv("SUBLSYNC_DESTINATION", filepath.Join(env.Root, "from-env"))
	layout, _, err = core.ResolveLayout(core.LayoutOptions{Source: env.SourceDir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.Root, "from-env"), layout.DestDir)

	flag := filepath.Join(env.Root, "from-flag")
	layout, _, err = core.ResolveLayout(core.LayoutOptions{Source: env.SourceDir, Destination: flag})
	require.NoError(t, err)
	assert.Equal(t, flag, layout.DestDir)
}

func TestResolveLayout_Invalid(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	_, _, err := core.ResolveLayout(core.LayoutOptions{Source: env.SourceDir, Destination: env.SourceDir})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	t.Setenv("SUBLSYNC_PROJECTS_DIR", "a/b")
	_, _, err = core.ResolveLayout(core.LayoutOptions{Source: env.SourceDir})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

	_, _, err = core.ResolveLayout(core.LayoutOptions{
		Source:     env.SourceDir,
		ConfigFile: filepath.Join(env.Root, "missing.toml"),
	})
	require.Error(t, err)
}
