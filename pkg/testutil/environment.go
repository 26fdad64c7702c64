package testutil

import (
	"path/filepath"
	"testing"
)

// Environment is an isolated source/target/backup layout in a temp directory
type Environment struct {
	// SourceRoot holds packages, like a dotfiles checkout
	SourceRoot string
	// HomeDir plays the target root
	HomeDir string
	// BackupRoot receives archived entries
	BackupRoot string
	// StateDir receives the log file
	StateDir string
}

// NewEnvironment creates the directory layout and points HOME and the
// stashdot state directory at it for the duration of the test.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	tempDir := t.TempDir()
	env := &Environment{
		SourceRoot: filepath.Join(tempDir, "dotfiles"),
		HomeDir:    filepath.Join(tempDir, "home"),
		BackupRoot: filepath.Join(tempDir, "home", "dotfiles_backup"),
		StateDir:   filepath.Join(tempDir, "state"),
	}

	CreateDir(t, tempDir, "dotfiles")
	CreateDir(t, tempDir, "home")

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("STASHDOT_STATE_DIR", env.StateDir)

	return env
}

// PackageFile creates a file inside a package of the source tree
func (env *Environment) PackageFile(t *testing.T, pkg, rel, content string) string {
	t.Helper()
	return CreateFile(t, filepath.Join(env.SourceRoot, pkg), rel, content)
}

// PackageDir creates a directory inside a package of the source tree
func (env *Environment) PackageDir(t *testing.T, pkg, rel string) string {
	t.Helper()
	return CreateDir(t, filepath.Join(env.SourceRoot, pkg), rel)
}

// HomeFile creates a file in the target tree
func (env *Environment) HomeFile(t *testing.T, rel, content string) string {
	t.Helper()
	return CreateFile(t, env.HomeDir, rel, content)
}

// HomePath joins rel onto the target tree
func (env *Environment) HomePath(rel string) string {
	return filepath.Join(env.HomeDir, rel)
}

// BackupPath joins pkg and rel onto the backup root
func (env *Environment) BackupPath(pkg, rel string) string {
	return filepath.Join(env.BackupRoot, pkg, rel)
}
