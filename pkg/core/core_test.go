package core_test

import (
	"context"
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

func runSync(t *testing.T, env *testutil.TestEnvironment, force bool) *types.SyncResult {
	t.Helper()
	result, err := core.Sync(context.Background(), core.SyncOptions{
		Layout:     env.Layout(),
		Force:      force,
		FileSystem: env.FS,
	})
	require.NoError(t, err)
	return result
}

func TestSync_LinksSettingsAndKeymaps(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	prefs := env.WriteSource("Preferences.sublime-settings", "{}")
	keymap := env.WriteSource("Default (OSX).sublime-keymap", "[]")

	runSync(t, env, false)

	testutil.AssertSymlink(t, env.DestPath("Preferences.sublime-settings"), prefs)
	testutil.AssertSymlink(t, env.DestPath("Default (OSX).sublime-keymap"), keymap)
	info, err := os.Stat(env.DestPath(testutil.ProjectsDir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSync_LinksProjects(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	work := env.WriteSource("Projects/Work.sublime-project", "{}")

	runSync(t, env, false)

	testutil.AssertSymlink(t, env.DestPath("Projects", "Work.sublime-project"), work)
}

func TestSync_Idempotent(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteSource("Preferences.sublime-settings", "{}")
	env.WriteSource("Default (OSX).sublime-keymap", "[]")
	env.WriteSource("Projects/Work.sublime-project", "{}")
	env.WriteDest("Projects/Orphan.sublime-project", "{}")

	runSync(t, env, false)
	before := env.Snapshot(env.Root)

	second := runSync(t, env, false)
	assert.Equal(t, before, env.Snapshot(env.Root))

	for _, action := range second.Actions {
		switch action.Operation.Type {
		case types.OperationSymlink:
			assert.Equal(t, types.ActionAlreadyLinked, action.Status, action.Operation.Target)
		case types.OperationCreateDir:
			assert.Equal(t, types.ActionExists, action.Status, action.Operation.Target)
		default:
			t.Errorf("unexpected %s operation on second run", action.Operation.Type)
		}
	}
	assert.Equal(t, 4, second.Count(types.ActionAlreadyLinked))
}

func TestSync_AdoptsOrphanedProjects(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteDest("Projects/Orphan.sublime-project", `{"folders": []}`)

	result := runSync(t, env, false)

	adopted := env.SourcePath("Projects", "Orphan.sublime-project")
	testutil.AssertRegularFile(t, adopted, `{"folders": []}`)
	testutil.AssertSymlink(t, env.DestPath("Projects", "Orphan.sublime-project"), adopted)
	assert.Equal(t, 1, result.Count(types.ActionAdopted))
}

func TestSync_AdoptionCollisionChangesNothing(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteSource("Projects/Dup.sublime-project", "source")
	env.WriteDest("Projects/Dup.sublime-project", "dest")
	before := env.Snapshot(env.Root)

	_, err := core.Sync(context.Background(), core.SyncOptions{Layout: env.Layout(), FileSystem: env.FS})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAdoptConflict))
	assert.Equal(t, before, env.Snapshot(env.Root))
}

func TestSync_IgnoresNonMatchingFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteSource("README.md", "docs")
	env.WriteSource("Preferences.sublime-settings.bak", "old")
	env.WriteSource("Projects/notes.txt", "todo")
	env.WriteDest("Projects/scratch.txt", "mine")

	runSync(t, env, false)

	assert.Equal(t, []string{"Projects"}, env.Names(env.DestDir))
	assert.Equal(t, []string{"scratch.txt"}, env.Names(env.DestPath("Projects")))
	assert.Equal(t, []string{"notes.txt"}, env.Names(env.SourcePath("Projects")))
}

func TestSync_ExistingDestinationTree(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.MkdirDest("Projects")
	prefs := env.WriteSource("Preferences.sublime-settings", "{}")

	result := runSync(t, env, false)

	testutil.AssertSymlink(t, env.DestPath("Preferences.sublime-settings"), prefs)
	require.NotEmpty(t, result.Actions)
	assert.Equal(t, types.ActionExists, result.Actions[0].Status)
}

func TestSync_ConflictAndForce(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	prefs := env.WriteSource("Preferences.sublime-settings", "from source")
	env.WriteDest("Preferences.sublime-settings", "local edits")

	result, err := core.Sync(context.Background(), core.SyncOptions{Layout: env.Layout(), FileSystem: env.FS})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSymlinkConflict))
	require.Len(t, result.Conflicts(), 1)
	testutil.AssertRegularFile(t, env.DestPath("Preferences.sublime-settings"), "local edits")

	forced := runSync(t, env, true)
	assert.Equal(t, 1, forced.Count(types.ActionBackedUp))
	testutil.AssertSymlink(t, env.DestPath("Preferences.sublime-settings"), prefs)
	testutil.AssertRegularFile(t, env.DestPath("Preferences.sublime-settings.sublsync-backup"), "local edits")
}

func TestSync_DryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteSource("Preferences.sublime-settings", "{}")
	env.WriteDest("Projects/Orphan.sublime-project", "{}")
	before := env.Snapshot(env.Root)

	result, err := core.Sync(context.Background(), core.SyncOptions{
		Layout:     env.Layout(),
		DryRun:     true,
		FileSystem: env.FS,
	})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, len(result.Actions), result.Count(types.ActionPlanned))
	assert.Equal(t, before, env.Snapshot(env.Root))
}

func TestSync_MissingSource(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	layout := env.Layout()
	layout.SourceDir = filepath.Join(env.Root, "nowhere")

	result, err := core.Sync(context.Background(), core.SyncOptions{Layout: layout, FileSystem: env.FS})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	require.NotNil(t, result)
	assert.Empty(t, result.Actions)
}

func TestStatus_AfterSync(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteSource("Preferences.sublime-settings", "{}")
	env.WriteSource("Projects/Work.sublime-project", "{}")

	before, err := core.Status(core.StatusOptions{Layout: env.Layout(), FileSystem: env.FS})
	require.NoError(t, err)
	assert.False(t, before.InSync())

	runSync(t, env, false)

	after, err := core.Status(core.StatusOptions{Layout: env.Layout()})
	require.NoError(t, err)
	assert.True(t, after.InSync())
	assert.Len(t, after.Files, 2)
}
