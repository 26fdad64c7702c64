package config

import (
	"strings"
	"time"

	"github.com/arthur-debert/stashdot/pkg/errors"
	"github.com/arthur-debert/stashdot/pkg/paths"
	"github.com/pelletier/go-toml/v2"
)

// Config is the effective stashdot configuration
type Config struct {
	// Packages are processed in fixed-package mode
	Packages []string `koanf:"packages" toml:"packages"`
	// BackupRoot receives one subdirectory per package
	BackupRoot string  `koanf:"backup_root" toml:"backup_root"`
	Archive    Archive `koanf:"archive" toml:"archive"`
	Link       Link    `koanf:"link" toml:"link"`
}

// Archive holds tree-walk settings
type Archive struct {
	NestedDotfilesOnly bool `koanf:"nested_dotfiles_only" toml:"nested_dotfiles_only"`
}

// Link holds settings for the external link tool
type Link struct {
	Enabled bool     `koanf:"enabled" toml:"enabled"`
	Command string   `koanf:"command" toml:"command"`
	Args    []string `koanf:"args" toml:"args"`
	// TargetFlag passes the target directory to the tool, "{target}"
	// standing for the path. Empty leaves the tool's own default.
	TargetFlag string `koanf:"target_flag" toml:"target_flag"`
	// Timeout is a Go duration string such as "30s"
	Timeout string `koanf:"timeout" toml:"timeout"`
}

// TimeoutDuration returns the parsed link timeout, zero when unset.
// Validate rejects unparsable values.
func (l Link) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(l.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks the configuration for values that would make a run
// misbehave.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Packages))
	for _, name := range c.Packages {
		if err := paths.ValidatePackageName(name); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid entry in packages")
		}
		if seen[name] {
			return errors.Newf(errors.ErrConfigValid, "package %q listed more than once", name)
		}
		seen[name] = true
	}

	if c.BackupRoot == "" {
		return errors.New(errors.ErrConfigValid, "backup_root cannot be empty")
	}

	if c.Link.Enabled && c.Link.Command == "" {
		return errors.New(errors.ErrConfigValid, "link.command cannot be empty when linking is enabled")
	}

	if c.Link.TargetFlag != "" && !strings.Contains(c.Link.TargetFlag, "{target}") {
		return errors.Newf(errors.ErrConfigValid, "link.target_flag %q must contain {target}", c.Link.TargetFlag)
	}

	if c.Link.Timeout != "" {
		d, err := time.ParseDuration(c.Link.Timeout)
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid link.timeout %q", c.Link.Timeout)
		}
		if d < 0 {
			return errors.Newf(errors.ErrConfigValid, "link.timeout cannot be negative: %s", c.Link.Timeout)
		}
	}

	return nil
}

// Render returns the configuration as TOML
func (c *Config) Render() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}
