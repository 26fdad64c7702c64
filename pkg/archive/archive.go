package archive

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/stashdot/pkg/errors"
	"github.com/arthur-debert/stashdot/pkg/filesystem"
	"github.com/arthur-debert/stashdot/pkg/logging"
	"github.com/arthur-debert/stashdot/pkg/output"
	"github.com/rs/zerolog"
)

// Move records one relocated entry
type Move struct {
	// From is the original location under the target tree
	From string
	// BackupDir is the folder the entry was moved into
	BackupDir string
	// To is the entry's new full path
	To string
}

// Report lists the moves performed, in the order they happened
type Report struct {
	Moves []Move
}

// Archiver walks package source trees and moves conflicts aside
type Archiver struct {
	fs                 filesystem.FS
	reporter           output.Reporter
	logger             zerolog.Logger
	nestedDotfilesOnly bool
}

// Option configures an Archiver
type Option func(*Archiver)

// NestedDotfilesOnly applies the dot-entry filter at every depth instead
// of only at the package root, so a non-dot file inside a dot-directory
// is never considered.
func NestedDotfilesOnly(enabled bool) Option {
	return func(a *Archiver) {
		a.nestedDotfilesOnly = enabled
	}
}

// New creates an Archiver. A nil reporter discards trace lines.
func New(fsys filesystem.FS, reporter output.Reporter, opts ...Option) *Archiver {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if reporter == nil {
		reporter = output.Discard
	}
	a := &Archiver{
		fs:       fsys,
		reporter: reporter,
		logger:   logging.GetLogger("archive"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Archive moves every entry under targetDir that conflicts with a
// dot-entry of sourceDir into backupDir, keeping relative structure.
// backupDir is created first, whether or not anything is moved.
func (a *Archiver) Archive(sourceDir, targetDir, backupDir string) (*Report, error) {
	report := &Report{}
	err := a.archive(report, sourceDir, targetDir, backupDir, 0)
	return report, err
}

// ArchivePackages creates backupRoot/<name> for every package, then
// archives each package from sourceRoot/<name> against targetRoot.
func (a *Archiver) ArchivePackages(packages []string, sourceRoot, targetRoot, backupRoot string) (report *Report, err error) {
	defer logging.TrackOperation(a.logger, "archive-packages")(&err)

	report = &Report{}

	for _, name := range packages {
		dir := filepath.Join(backupRoot, name)
		if err := a.fs.MkdirAll(dir, 0755); err != nil {
			return report, errors.Wrapf(err, errors.ErrDirCreate, "failed to create backup directory %s", dir)
		}
	}

	for _, name := range packages {
		a.logger.Info().
			Str("package", name).
			Str("source", filepath.Join(sourceRoot, name)).
			Str("target", targetRoot).
			Msg("Archiving package")

		if err := a.archive(report, filepath.Join(sourceRoot, name), targetRoot, filepath.Join(backupRoot, name), 0); err != nil {
			return report, fmt.Errorf("archiving package %s: %w", name, err)
		}
	}

	return report, nil
}

func (a *Archiver) archive(report *Report, sourceDir, targetDir, backupDir string, depth int) error {
	if err := a.fs.MkdirAll(backupDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create backup directory %s", backupDir)
	}

	entries, err := a.readEntries(sourceDir, depth)
	if err != nil {
		return err
	}

	for _, name := range entries {
		source := filepath.Join(sourceDir, name)
		target := filepath.Join(targetDir, name)

		act, err := a.decide(source, target)
		if err != nil {
			return err
		}
		a.logger.Trace().Str("source", source).Str("target", target).Stringer("action", act).Msg("Checked entry")

		switch act {
		case actionRecurse:
			if err := a.archive(report, source, target, filepath.Join(backupDir, name), depth+1); err != nil {
				return err
			}

		case actionMove:
			dest := filepath.Join(backupDir, name)
			a.reporter.Moved(target, backupDir)
			if err := a.fs.Rename(target, dest); err != nil {
				return errors.Wrapf(err, errors.ErrMove, "failed to move %s to %s", target, backupDir)
			}
			a.logger.Info().Str("from", target).Str("to", dest).Msg("Moved conflicting entry")
			report.Moves = append(report.Moves, Move{From: target, BackupDir: backupDir, To: dest})
		}
	}

	return nil
}

// readEntries lists the candidate names under dir. At the package root,
// and at every depth with nestedDotfilesOnly, only dot-entries qualify.
// A missing or non-directory dir has no entries.
func (a *Archiver) readEntries(dir string, depth int) ([]string, error) {
	entries, err := a.fs.ReadDir(dir)
	if err != nil {
		if isAbsent(err) {
			a.logger.Debug().Str("source", dir).Msg("Source directory missing, nothing to archive")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read source directory %s", dir)
	}

	dotOnly := depth == 0 || a.nestedDotfilesOnly

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}
		if dotOnly && !IsDotEntry(name) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// IsDotEntry reports whether name is a dotfile or dot-directory eligible
// for archiving. "." and ".." are excluded, as is anything starting "..".
func IsDotEntry(name string) bool {
	return len(name) >= 2 && name[0] == '.' && name[1] != '.'
}
