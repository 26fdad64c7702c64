// Package linker invokes the external symlink-farm tool (GNU stow by
// default) once per package after conflicts have been archived.
//
// The tool is opaque: its output is only logged and a failure for one
// package never prevents the next package from being linked.
package linker

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/arthur-debert/stashdot/pkg/errors"
	"github.com/arthur-debert/stashdot/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultCommand is the link tool used when none is configured
const DefaultCommand = "stow"

// DefaultTimeout bounds a single link invocation
const DefaultTimeout = 5 * time.Minute

// DefaultTargetFlag passes the target directory to stow
const DefaultTargetFlag = "--target={target}"

// TargetPlaceholder is replaced by the target directory in TargetFlag
const TargetPlaceholder = "{target}"

const waitDelay = 2 * time.Second

// Runner links a single package into the target tree
type Runner interface {
	Link(ctx context.Context, pkg string) error
}

// Stow runs an external command as `<Command> <Args...> [target flag]
// <package>` from the source root.
type Stow struct {
	Command string
	Args    []string
	Dir     string
	Timeout time.Duration

	// Target is the directory links are created in. When both Target
	// and TargetFlag are set, TargetFlag with TargetPlaceholder replaced
	// is passed before the package name; otherwise the tool's own
	// default target applies.
	Target     string
	TargetFlag string

	logger zerolog.Logger
}

// NewStow creates a Stow runner executing command from dir
func NewStow(command string, args []string, dir string) *Stow {
	if command == "" {
		command = DefaultCommand
	}
	return &Stow{
		Command:    command,
		Args:       args,
		Dir:        dir,
		Timeout:    DefaultTimeout,
		TargetFlag: DefaultTargetFlag,
		logger:     logging.GetLogger("linker"),
	}
}

// Link implements Runner
func (s *Stow) Link(ctx context.Context, pkg string) error {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	args := s.commandArgs(pkg)
	cmd := exec.CommandContext(ctx, s.Command, args...)
	cmd.Dir = s.Dir
	cmd.Env = os.Environ()
	// Children that outlive a killed tool must not hold Wait on our pipes
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.logger.Debug().
		Str("command", s.Command).
		Strs("args", args).
		Str("dir", s.Dir).
		Msg("Executing link command")

	err := cmd.Run()

	if stdout.Len() > 0 {
		s.logger.Debug().Str("package", pkg).Str("output", stdout.String()).Msg("Link command stdout")
	}
	if stderr.Len() > 0 {
		s.logger.Debug().Str("package", pkg).Str("output", stderr.String()).Msg("Link command stderr")
	}

	if err != nil {
		linkErr := errors.Newf(errors.ErrLink, "%s failed for package %s", s.Command, pkg).
			WithDetail("package", pkg).
			WithDetail("stderr", stderr.String())
		linkErr.Wrapped = err
		return linkErr
	}

	s.logger.Info().Str("package", pkg).Str("command", s.Command).Msg("Package linked")
	return nil
}

func (s *Stow) commandArgs(pkg string) []string {
	args := append([]string{}, s.Args...)
	if s.Target != "" && s.TargetFlag != "" {
		args = append(args, strings.ReplaceAll(s.TargetFlag, TargetPlaceholder, s.Target))
	}
	return append(args, pkg)
}

// Failure records a package whose link invocation failed
type Failure struct {
	Package string
	Err     error
}

// LinkAll invokes runner once per package in order. Failures are logged
// and collected; they never stop the remaining packages.
func LinkAll(ctx context.Context, runner Runner, packages []string) []Failure {
	logger := logging.GetLogger("linker")

	var failures []Failure
	for _, pkg := range packages {
		if err := runner.Link(ctx, pkg); err != nil {
			logger.Warn().Err(err).Str("package", pkg).Msg("Link failed, continuing")
			failures = append(failures, Failure{Package: pkg, Err: err})
		}
	}
	return failures
}
