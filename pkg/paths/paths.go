// Package paths provides path handling for stashdot: home expansion,
// absolute resolution of user-supplied folders, and the XDG state
// location used for the log file.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/stashdot/pkg/errors"
)

// Environment variable names
const (
	// EnvStateDir overrides the XDG state directory for stashdot
	EnvStateDir = "STASHDOT_STATE_DIR"

	// EnvXDGStateHome is consulted before the xdg package default so that
	// changes made after process start (tests, wrappers) are honoured.
	EnvXDGStateHome = "XDG_STATE_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name for stashdot-specific files
	AppDirName = "stashdot"

	// LogFileName is the name of the log file
	LogFileName = "stashdot.log"
)

// HomeDir returns the user's home directory, falling back to $HOME.
func HomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		return homeDir, nil
	}
	if env := os.Getenv(EnvHome); env != "" {
		return env, nil
	}
	return "", errors.Wrap(err, errors.ErrFileAccess, "cannot determine home directory")
}

// ExpandHome expands a leading ~ or ~/ to the user's home directory.
// Paths of the form ~user are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := HomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

// Resolve expands the home prefix and makes the path absolute against
// the current working directory.
func Resolve(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}
	return abs, nil
}

// StateDir returns the directory for stashdot state such as the log file.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	if stateHome := os.Getenv(EnvXDGStateHome); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path of the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}
