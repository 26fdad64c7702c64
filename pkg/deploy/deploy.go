// Package deploy runs a complete stashdot pass: conflicts for every
// package are archived first, then each package is handed to the link
// tool. Both command-line modes reduce to Run.
package deploy

import (
	"context"

	"github.com/arthur-debert/stashdot/pkg/archive"
	"github.com/arthur-debert/stashdot/pkg/errors"
	"github.com/arthur-debert/stashdot/pkg/filesystem"
	"github.com/arthur-debert/stashdot/pkg/linker"
	"github.com/arthur-debert/stashdot/pkg/logging"
	"github.com/arthur-debert/stashdot/pkg/output"
	"github.com/arthur-debert/stashdot/pkg/paths"
)

// Options describes one run
type Options struct {
	Packages   []string
	SourceRoot string
	TargetRoot string
	BackupRoot string

	// Link runs Runner for every package once archiving succeeded
	Link   bool
	Runner linker.Runner

	NestedDotfilesOnly bool

	// FS defaults to the OS filesystem, Reporter to output.Discard
	FS       filesystem.FS
	Reporter output.Reporter
}

// Result collects what a run did
type Result struct {
	Report       *archive.Report
	LinkFailures []linker.Failure
	// Linked lists the packages handed to the link tool
	Linked []string
}

// Run archives conflicts for every package, then links them. An
// archive error aborts the run before any linking; link failures are
// returned in Result and never as an error.
func Run(ctx context.Context, opts Options) (result *Result, err error) {
	logger := logging.GetLogger("deploy")
	defer logging.TrackOperation(logger, "deploy")(&err)

	if err := validate(opts); err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	if err := fsys.MkdirAll(opts.BackupRoot, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create backup root %s", opts.BackupRoot)
	}

	archiver := archive.New(fsys, opts.Reporter, archive.NestedDotfilesOnly(opts.NestedDotfilesOnly))

	result = &Result{}
	report, err := archiver.ArchivePackages(opts.Packages, opts.SourceRoot, opts.TargetRoot, opts.BackupRoot)
	result.Report = report
	if err != nil {
		return result, err
	}

	logger.Info().
		Int("packages", len(opts.Packages)).
		Int("moved", len(report.Moves)).
		Msg("Archiving complete")

	if !opts.Link {
		logger.Debug().Msg("Linking disabled")
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	result.Linked = append(result.Linked, opts.Packages...)
	result.LinkFailures = linker.LinkAll(ctx, opts.Runner, opts.Packages)

	return result, nil
}

func validate(opts Options) error {
	if opts.SourceRoot == "" {
		return errors.New(errors.ErrInvalidInput, "source root cannot be empty")
	}
	if opts.TargetRoot == "" {
		return errors.New(errors.ErrInvalidInput, "target root cannot be empty")
	}
	if opts.BackupRoot == "" {
		return errors.New(errors.ErrInvalidInput, "backup root cannot be empty")
	}
	for _, name := range opts.Packages {
		if err := paths.ValidatePackageName(name); err != nil {
			return err
		}
	}
	if opts.Link && opts.Runner == nil {
		return errors.New(errors.ErrInvalidInput, "linking requested without a link runner")
	}
	return nil
}
