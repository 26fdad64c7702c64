package cli

import (
	"os"

	"github.com/arthur-debert/stashdot/pkg/config"
	"github.com/arthur-debert/stashdot/pkg/deploy"
	"github.com/arthur-debert/stashdot/pkg/errors"
	"github.com/arthur-debert/stashdot/pkg/linker"
	"github.com/arthur-debert/stashdot/pkg/logging"
	"github.com/arthur-debert/stashdot/pkg/output"
	"github.com/arthur-debert/stashdot/pkg/paths"
	"github.com/spf13/cobra"
)

// plan is a fully resolved run derived from flags, arguments and config
type plan struct {
	packages   []string
	sourceRoot string
	targetRoot string
	backupRoot string
	link       bool
}

// runStash archives conflicts and links packages in either invocation form
func runStash(cmd *cobra.Command, opts *rootOptions, args []string) error {
	logger := logging.GetLogger("cli")

	sourceRoot, err := resolveSource(opts.sourceDir)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.LoadOptions{SourceRoot: sourceRoot, File: opts.configFile})
	if err != nil {
		return err
	}

	p, err := buildPlan(cfg, opts, sourceRoot, args)
	if err != nil {
		return err
	}

	logger.Info().
		Strs("packages", p.packages).
		Str("source", p.sourceRoot).
		Str("target", p.targetRoot).
		Str("backup", p.backupRoot).
		Bool("link", p.link).
		Msg("Starting run")

	stow := linker.NewStow(cfg.Link.Command, cfg.Link.Args, p.sourceRoot)
	stow.Target = p.targetRoot
	stow.TargetFlag = cfg.Link.TargetFlag
	if d := cfg.Link.TimeoutDuration(); d > 0 {
		stow.Timeout = d
	}

	result, err := deploy.Run(cmd.Context(), deploy.Options{
		Packages:           p.packages,
		SourceRoot:         p.sourceRoot,
		TargetRoot:         p.targetRoot,
		BackupRoot:         p.backupRoot,
		Link:               p.link,
		Runner:             stow,
		NestedDotfilesOnly: cfg.Archive.NestedDotfilesOnly,
		Reporter:           output.NewPrinter(cmd.OutOrStdout()),
	})
	if err != nil {
		return err
	}

	if len(result.Report.Moves) == 0 {
		logger.Info().Msg(MsgNothingMoved)
	}

	if len(result.LinkFailures) > 0 {
		warn := output.NewPrinter(cmd.ErrOrStderr())
		for _, f := range result.LinkFailures {
			warn.Warn(MsgLinkFailed, f.Package, f.Err)
		}
	}

	return nil
}

// buildPlan resolves roots and the package list. With no arguments the
// configured packages are used and linking follows config; with
// <package_name> <backup_folder> a single package is archived into the
// given folder and linking is opt-in.
func buildPlan(cfg *config.Config, opts *rootOptions, sourceRoot string, args []string) (*plan, error) {
	p := &plan{sourceRoot: sourceRoot}

	if opts.targetDir != "" {
		target, err := paths.Resolve(opts.targetDir)
		if err != nil {
			return nil, err
		}
		p.targetRoot = target
	} else {
		home, err := paths.HomeDir()
		if err != nil {
			return nil, err
		}
		p.targetRoot = home
	}

	switch len(args) {
	case 0:
		backupRoot, err := paths.Resolve(cfg.BackupRoot)
		if err != nil {
			return nil, err
		}
		p.packages = cfg.Packages
		p.backupRoot = backupRoot
		p.link = cfg.Link.Enabled
	case 2:
		name := paths.NormalizePackageName(args[0])
		if err := paths.ValidatePackageName(name); err != nil {
			return nil, err
		}
		backupRoot, err := paths.Resolve(args[1])
		if err != nil {
			return nil, err
		}
		p.packages = []string{name}
		p.backupRoot = backupRoot
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, MsgArgsUsage, len(args))
	}

	if opts.link {
		p.link = true
	}
	if opts.noLink {
		p.link = false
	}

	return p, nil
}

// resolveSource returns the dotfiles root: the given directory, or the
// working directory when empty.
func resolveSource(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "failed to get working directory")
		}
		return wd, nil
	}

	abs, err := paths.Resolve(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNotFound, "source directory %s not found", abs)
	}
	if !info.IsDir() {
		return "", errors.Newf(errors.ErrInvalidInput, "source %s is not a directory", abs)
	}
	return abs, nil
}
