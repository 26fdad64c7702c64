package archive

import (
	stderrors "errors"
	"io/fs"
	"syscall"

	"github.com/arthur-debert/stashdot/pkg/errors"
)

type action int

const (
	actionNone action = iota
	actionRecurse
	actionMove
)

func (a action) String() string {
	switch a {
	case actionRecurse:
		return "recurse"
	case actionMove:
		return "move"
	default:
		return "none"
	}
}

// decide applies the first matching rule:
//
//  1. source is a directory and target is a directory that is not itself
//     a symlink: recurse
//  2. target is a regular file, or target is a symlink of any kind: move
//  3. otherwise: nothing
//
// Directory and regular-file checks follow symlinks; the symlink check
// does not. A missing entry counts as neither; any other stat failure is
// returned as FILE_ACCESS.
func (a *Archiver) decide(source, target string) (action, error) {
	sourceInfo, err := a.stat(a.fs.Stat, source)
	if err != nil {
		return actionNone, err
	}
	targetInfo, err := a.stat(a.fs.Stat, target)
	if err != nil {
		return actionNone, err
	}
	targetLinkInfo, err := a.stat(a.fs.Lstat, target)
	if err != nil {
		return actionNone, err
	}

	sourceIsDir := sourceInfo != nil && sourceInfo.IsDir()
	targetIsDir := targetInfo != nil && targetInfo.IsDir()
	targetIsFile := targetInfo != nil && targetInfo.Mode().IsRegular()
	targetIsLink := targetLinkInfo != nil && targetLinkInfo.Mode()&fs.ModeSymlink != 0

	if sourceIsDir && targetIsDir && !targetIsLink {
		return actionRecurse, nil
	}
	if targetIsFile || targetIsLink {
		return actionMove, nil
	}
	return actionNone, nil
}

// stat returns nil info for entries that do not exist, including links
// that dangle or loop when followed.
func (a *Archiver) stat(statFn func(string) (fs.FileInfo, error), path string) (fs.FileInfo, error) {
	info, err := statFn(path)
	if err == nil {
		return info, nil
	}
	if isAbsent(err) {
		return nil, nil
	}
	return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
}

func isAbsent(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) ||
		stderrors.Is(err, syscall.ENOTDIR) ||
		stderrors.Is(err, syscall.ELOOP)
}
