// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "file not found",
			wantStr: "[NOT_FOUND] file not found",
		},
		{
			name:    "adopt_conflict_error",
			code:    errors.ErrAdoptConflict,
			message: "Foo.sublime-project exists in both trees",
			wantStr: "[ADOPT_CONFLICT] Foo.sublime-project exists in both trees",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details, "details should be initialized")
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrConfigValid, "pattern %q is empty", "keymap")
	assert.Equal(t, `[CONFIG_INVALID] pattern "keymap" is empty`, err.Error())
}

func TestWrap(t *testing.T) {
	base := stderrors.New("permission denied")

	err := errors.Wrap(base, errors.ErrDirCreate, "cannot create Projects")
	require.NotNil(t, err)
	assert.Equal(t, "[DIR_CREATE] cannot create Projects: permission denied", err.Error())
	assert.True(t, stderrors.Is(err, base), "wrapped cause should stay reachable")

	assert.Nil(t, errors.Wrap(nil, errors.ErrDirCreate, "noop"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrDirCreate, "noop %d", 1))
}

func TestWrap_PreservesOSErrors(t *testing.T) {
	_, statErr := os.Stat("/definitely/not/here")
	err := errors.Wrapf(statErr, errors.ErrFileAccess, "stat %s", "x")
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrSymlinkConflict, "conflict")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrSymlinkConflict))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrAdoptMove))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrSymlinkConflict))
	assert.Equal(t, errors.ErrSymlinkConflict, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestIs_ComparesCodes(t *testing.T) {
	a := errors.New(errors.ErrAdoptMove, "a")
	b := errors.New(errors.ErrAdoptMove, "b")
	c := errors.New(errors.ErrDirCreate, "c")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrSymlinkConflict, "conflict").
		WithDetail("target", "/dest/Preferences.sublime-settings")

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "/dest/Preferences.sublime-settings", details["target"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestVerbose(t *testing.T) {
	assert.Equal(t, "", errors.Verbose(nil))

	err := errors.Wrap(stderrors.New("boom"), errors.ErrInternal, "failed")
	out := errors.Verbose(err)
	assert.Contains(t, out, "[INTERNAL] failed")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "errors_test.go", "stack trace should point at the wrap site")
}
