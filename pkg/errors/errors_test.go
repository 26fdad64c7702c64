// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/arthur-debert/stashdot/pkg/errors"
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
			message: "package not found",
			wantStr: "[NOT_FOUND] package not found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "expected two arguments",
			wantStr: "[INVALID_INPUT] expected two arguments",
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
	err := errors.Newf(errors.ErrConfigValid, "package name %q contains a path separator", "a/b")
	assert.Equal(t, `[CONFIG_INVALID] package name "a/b" contains a path separator`, err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil_error_stays_nil", func(t *testing.T) {
		assert.NoError(t, errors.Wrap(nil, errors.ErrMove, "move failed"))
		assert.NoError(t, errors.Wrapf(nil, errors.ErrMove, "move %s failed", "x"))
	})

	t.Run("wraps_underlying_error", func(t *testing.T) {
		err := errors.Wrapf(os.ErrPermission, errors.ErrDirCreate, "cannot create %s", "/ro/backup")
		require.Error(t, err)

		assert.Equal(t, "[DIR_CREATE] cannot create /ro/backup: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, os.ErrPermission), "underlying error should be reachable")
		assert.Equal(t, errors.ErrDirCreate, errors.GetErrorCode(err))
	})

	t.Run("code_survives_fmt_wrapping", func(t *testing.T) {
		inner := errors.Wrap(os.ErrNotExist, errors.ErrMove, "move failed")
		outer := fmt.Errorf("archiving git: %w", inner)

		assert.True(t, errors.IsErrorCode(outer, errors.ErrMove))
		assert.False(t, errors.IsErrorCode(outer, errors.ErrLink))
	})
}

func TestIs(t *testing.T) {
	err := errors.Wrap(os.ErrExist, errors.ErrMove, "move failed")

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrMove, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrLink, "")))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrLink, "link failed").
		WithDetail("package", "vim").
		WithDetail("command", "stow")

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "vim", details["package"])
	assert.Equal(t, "stow", details["command"])

	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}
