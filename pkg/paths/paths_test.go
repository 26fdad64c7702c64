package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stashdot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tilde_only", "~", home},
		{"tilde_slash", "~/dotfiles_backup", filepath.Join(home, "dotfiles_backup")},
		{"other_user", "~bob/x", "~bob/x"},
		{"absolute", "/etc/hosts", "/etc/hosts"},
		{"relative", "backup", "backup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("relative_path_is_joined_to_cwd", func(t *testing.T) {
		dir := t.TempDir()
		orig, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(orig) })

		got, err := Resolve("backups")
		require.NoError(t, err)

		cwd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, "backups"), got)
	})

	t.Run("home_prefix_is_expanded", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		got, err := Resolve("~/bak")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "bak"), got)
	})

	t.Run("empty_is_invalid", func(t *testing.T) {
		_, err := Resolve("")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestStateDir(t *testing.T) {
	t.Run("explicit_override_wins", func(t *testing.T) {
		t.Setenv(EnvStateDir, "/custom/state")
		t.Setenv(EnvXDGStateHome, "/xdg/state")
		assert.Equal(t, "/custom/state", StateDir())
	})

	t.Run("xdg_state_home", func(t *testing.T) {
		t.Setenv(EnvStateDir, "")
		t.Setenv(EnvXDGStateHome, "/xdg/state")
		assert.Equal(t, "/xdg/state/stashdot", StateDir())
		assert.Equal(t, "/xdg/state/stashdot/stashdot.log", LogFilePath())
	})
}

func TestValidatePackageName(t *testing.T) {
	valid := []string{"git", "vim", "zsh", "Applications", "my-pack_2"}
	for _, name := range valid {
		assert.NoError(t, ValidatePackageName(name), name)
	}

	invalid := []string{"", ".", "..", "a/b", `a\b`, "bad\x01name"}
	for _, name := range invalid {
		err := ValidatePackageName(name)
		require.Error(t, err, "%q should be rejected", name)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	}
}

func TestNormalizePackageName(t *testing.T) {
	assert.Equal(t, "git", NormalizePackageName("git/"))
	assert.Equal(t, "git", NormalizePackageName("git//"))
	assert.Equal(t, "git", NormalizePackageName("git"))
}
