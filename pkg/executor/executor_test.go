package executor_test

import (
	"context"
	"os"
	"testing"

	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/executor"
	"github.com/arthur-debert/sublsync/pkg/testutil"
	"github.com/arthur-debert/sublsync/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statuses(results []types.ActionResult) []types.ActionStatus {
	out := make([]types.ActionStatus, len(results))
	for i, r := range results {
		out[i] = r.Status
	}
	return out
}

func TestExecute_AllOperationTypes(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	src := env.WriteSource("Preferences.sublime-settings", "{}")
	env.WriteDest("Projects/Foo.sublime-project", "foo")

	ops := []types.Operation{
		{Type: types.OperationCreateDir, Target: env.DestPath("Projects")},
		{Type: types.OperationCreateDir, Target: env.SourcePath("Projects")},
		{Type: types.OperationAdopt, Kind: types.KindProject,
			Source: env.SourcePath("Projects", "Foo.sublime-project"), Target: env.DestPath("Projects", "Foo.sublime-project")},
		{Type: types.OperationSymlink, Kind: types.KindSettings, Source: src, Target: env.DestPath("Preferences.sublime-settings")},
		{Type: types.OperationSymlink, Kind: types.KindProject,
			Source: env.SourcePath("Projects", "Foo.sublime-project"), Target: env.DestPath("Projects", "Foo.sublime-project")},
	}

	results, err := executor.New(env.FS, executor.Options{}).Execute(context.Background(), ops)
	require.NoError(t, err)

	assert.Equal(t, []types.ActionStatus{
		types.ActionExists,
		types.ActionCreated,
		types.ActionAdopted,
		types.ActionLinked,
		types.ActionLinked,
	}, statuses(results))
	assert.Equal(t, types.KindSettings, results[3].Operation.Kind, "results keep the planned operation")

	testutil.AssertRegularFile(t, env.SourcePath("Projects", "Foo.sublime-project"), "foo")
	testutil.AssertSymlink(t, env.DestPath("Projects", "Foo.sublime-project"), env.SourcePath("Projects", "Foo.sublime-project"))
	testutil.AssertSymlink(t, env.DestPath("Preferences.sublime-settings"), src)
}

func TestExecute_DryRunTouchesNothing(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	src := env.WriteSource("Preferences.sublime-settings", "{}")
	before := env.Snapshot(env.Root)

	ops := []types.Operation{
		{Type: types.OperationCreateDir, Target: env.DestPath("Projects")},
		{Type: types.OperationSymlink, Source: src, Target: env.DestPath("Preferences.sublime-settings")},
	}
	results, err := executor.New(env.FS, executor.Options{DryRun: true}).Execute(context.Background(), ops)

	require.NoError(t, err)
	assert.Equal(t, []types.ActionStatus{types.ActionPlanned, types.ActionPlanned}, statuses(results))
	assert.Contains(t, results[1].Message, "would link")
	assert.Equal(t, before, env.Snapshot(env.Root))
}

func TestExecute_ConflictsCollected(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	a := env.WriteSource("A.sublime-settings", "a")
	b := env.WriteSource("B.sublime-settings", "b")
	env.WriteDest("A.sublime-settings", "real")

	ops := []types.Operation{
		{Type: types.OperationSymlink, Source: a, Target: env.DestPath("A.sublime-settings")},
		{Type: types.OperationSymlink, Source: b, Target: env.DestPath("B.sublime-settings")},
	}
	results, err := executor.New(env.FS, executor.Options{}).Execute(context.Background(), ops)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSymlinkConflict))
	assert.Equal(t, []types.ActionStatus{types.ActionConflict, types.ActionLinked}, statuses(results),
		"a conflict does not stop later links")
	assert.Contains(t, errors.GetErrorDetails(err), env.DestPath("A.sublime-settings"))
}

func TestExecute_StopsOnHardError(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	src := env.WriteSource("A.sublime-settings", "a")
	blocker := env.WriteSource("blocker", "file, not a dir")

	ops := []types.Operation{
		{Type: types.OperationCreateDir, Target: blocker + "/Projects"},
		{Type: types.OperationSymlink, Source: src, Target: env.DestPath("A.sublime-settings")},
	}
	results, err := executor.New(env.FS, executor.Options{}).Execute(context.Background(), ops)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	assert.Len(t, results, 1, "no operation runs after a hard failure")
	testutil.AssertNotExists(t, env.DestPath("A.sublime-settings"))
}

func TestExecute_AdoptRefusesToOverwrite(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteSource("Projects/Foo.sublime-project", "source")
	env.WriteDest("Projects/Foo.sublime-project", "app")

	ops := []types.Operation{{Type: types.OperationAdopt, Kind: types.KindProject,
		Source: env.SourcePath("Projects", "Foo.sublime-project"), Target: env.DestPath("Projects", "Foo.sublime-project")}}
	_, err := executor.New(env.FS, executor.Options{}).Execute(context.Background(), ops)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAdoptConflict))
	testutil.AssertRegularFile(t, env.SourcePath("Projects", "Foo.sublime-project"), "source")
	testutil.AssertRegularFile(t, env.DestPath("Projects", "Foo.sublime-project"), "app")
}

func TestExecute_CancelledContext(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := executor.New(env.FS, executor.Options{}).Execute(ctx,
		[]types.Operation{{Type: types.OperationCreateDir, Target: env.DestPath("Projects")}})

	require.Error(t, err)
	assert.Empty(t, results)
	_, statErr := os.Stat(env.DestPath("Projects"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExecute_UnknownOperation(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	_, err := executor.New(env.FS, executor.Options{}).Execute(context.Background(),
		[]types.Operation{{Type: "teleport", Target: "/x"}})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlanInvalid))
}

func TestExecute_CreatesNestedDirectories(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	nested := env.DestPath("Projects", "Clients", "Acme")

	results, err := executor.New(env.FS, executor.Options{}).Execute(context.Background(),
		[]types.Operation{{Type: types.OperationCreateDir, Target: nested}})

	require.NoError(t, err)
	assert.Equal(t, []types.ActionStatus{types.ActionCreated}, statuses(results))
	info, statErr := os.Stat(nested)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestExecute_EmptyPlan(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	results, err := executor.New(env.FS, executor.Options{}).Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
