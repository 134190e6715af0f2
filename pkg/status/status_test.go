package status_test

import (
	"testing"

	"github.com/arthur-debert/sublsync/pkg/status"
	"github.com/arthur-debert/sublsync/pkg/testutil"
	"github.com/arthur-debert/sublsync/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func states(report *types.StatusReport) map[string]types.LinkState {
	out := map[string]types.LinkState{}
	for _, f := range report.Files {
		out[f.Name] = f.State
	}
	return out
}

func TestInspect_Classification(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	linked := env.WriteSource("Linked.sublime-settings", "{}")
	env.WriteSource("Missing.sublime-keymap", "[]")
	env.WriteSource("Blocked.sublime-settings", "{}")
	env.WriteSource("Elsewhere.sublime-settings", "{}")
	env.WriteSource("Projects/Work.sublime-project", "{}")
	env.WriteSource("notes.txt", "")

	env.LinkDest("Linked.sublime-settings", linked)
	env.WriteDest("Blocked.sublime-settings", "real")
	env.LinkDest("Elsewhere.sublime-settings", "/tmp/elsewhere")
	env.LinkDest("Gone.sublime-settings", env.SourcePath("Gone.sublime-settings"))
	env.LinkDest("Alias.sublime-settings", linked)
	env.LinkDest("Foreign.sublime-settings", "/opt/foreign.sublime-settings")
	env.WriteDest("Package Control.sublime-settings", "app-owned")
	env.WriteDest("Projects/New.sublime-project", "{}")

	report, err := status.Inspect(env.FS, env.Layout())
	require.NoError(t, err)

	assert.Equal(t, map[string]types.LinkState{
		"Linked.sublime-settings":    types.StateLinked,
		"Missing.sublime-keymap":     types.StateMissing,
		"Blocked.sublime-settings":   types.StateConflict,
		"Elsewhere.sublime-settings": types.StateWrongTarget,
		"Gone.sublime-settings":      types.StateDangling,
		"Alias.sublime-settings":     types.StateWrongTarget,
		"Work.sublime-project":       types.StateMissing,
		"New.sublime-project":        types.StateUnadopted,
	}, states(report))
	assert.False(t, report.InSync())

	for i := 1; i < len(report.Files); i++ {
		assert.LessOrEqual(t, report.Files[i-1].Target, report.Files[i].Target, "files are sorted by target")
	}
}

func TestInspect_InSyncAfterLinking(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	src := env.WriteSource("Preferences.sublime-settings", "{}")
	env.LinkDest("Preferences.sublime-settings", src)

	report, err := status.Inspect(env.FS, env.Layout())
	require.NoError(t, err)
	require.Len(t, report.Files, 1)
	assert.Equal(t, src, report.Files[0].LinkTarget)
	assert.True(t, report.InSync())
}

func TestInspect_EmptyTrees(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	report, err := status.Inspect(env.FS, env.Layout())
	require.NoError(t, err)
	assert.Empty(t, report.Files)
	assert.True(t, report.InSync())
}
