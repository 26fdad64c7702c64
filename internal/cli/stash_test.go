// TEST TYPE: Unit Test
// DEPENDENCIES: Environment (HOME)
// PURPOSE: Verify argument handling and run planning for both invocation forms

package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/stashdot/pkg/config"
	"github.com/arthur-debert/stashdot/pkg/errors"
	"github.com/arthur-debert/stashdot/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)
	return cfg
}

func TestBuildPlan_FixedMode(t *testing.T) {
	env := testutil.NewEnvironment(t)

	p, err := buildPlan(defaultConfig(t), &rootOptions{}, env.SourceRoot, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"git", "vim", "zsh", "Applications"}, p.packages)
	assert.Equal(t, env.SourceRoot, p.sourceRoot)
	assert.Equal(t, env.HomeDir, p.targetRoot)
	assert.Equal(t, env.BackupRoot, p.backupRoot)
	assert.True(t, p.link)
}

func TestBuildPlan_ParameterizedMode(t *testing.T) {
	env := testutil.NewEnvironment(t)
	backup := filepath.Join(t.TempDir(), "bak")

	p, err := buildPlan(defaultConfig(t), &rootOptions{}, env.SourceRoot, []string{"vim/", backup})
	require.NoError(t, err)

	assert.Equal(t, []string{"vim"}, p.packages)
	assert.Equal(t, backup, p.backupRoot)
	assert.False(t, p.link, "single-package runs do not link unless asked")
}

func TestBuildPlan_LinkFlags(t *testing.T) {
	env := testutil.NewEnvironment(t)

	tests := []struct {
		name string
		opts rootOptions
		args []string
		want bool
	}{
		{name: "fixed_default", want: true},
		{name: "fixed_no_link", opts: rootOptions{noLink: true}, want: false},
		{name: "param_default", args: []string{"git", "/tmp/bak"}, want: false},
		{name: "param_link", opts: rootOptions{link: true}, args: []string{"git", "/tmp/bak"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			p, err := buildPlan(defaultConfig(t), &opts, env.SourceRoot, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.link)
		})
	}
}

func TestBuildPlan_LinkDisabledInConfig(t *testing.T) {
	env := testutil.NewEnvironment(t)
	cfg := defaultConfig(t)
	cfg.Link.Enabled = false

	p, err := buildPlan(cfg, &rootOptions{}, env.SourceRoot, nil)
	require.NoError(t, err)
	assert.False(t, p.link)
}

func TestBuildPlan_TargetOverride(t *testing.T) {
	env := testutil.NewEnvironment(t)
	target := t.TempDir()

	p, err := buildPlan(defaultConfig(t), &rootOptions{targetDir: target}, env.SourceRoot, nil)
	require.NoError(t, err)
	assert.Equal(t, target, p.targetRoot)
}

func TestBuildPlan_InvalidPackageName(t *testing.T) {
	env := testutil.NewEnvironment(t)

	_, err := buildPlan(defaultConfig(t), &rootOptions{}, env.SourceRoot, []string{"../etc", "/tmp/bak"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestValidateArgs(t *testing.T) {
	assert.NoError(t, validateArgs(nil, nil))
	assert.NoError(t, validateArgs(nil, []string{"git", "/tmp/bak"}))

	err := validateArgs(nil, []string{"git"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	assert.Error(t, validateArgs(nil, []string{"a", "b", "c"}))
}

func TestResolveSource(t *testing.T) {
	dir := t.TempDir()

	got, err := resolveSource(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	_, err = resolveSource(filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	file := testutil.CreateFile(t, dir, "plain", "x")
	_, err = resolveSource(file)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRootCmd_LinkFlagsAreExclusive(t *testing.T) {
	env := testutil.NewEnvironment(t)

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--source", env.SourceRoot, "--link", "--no-link"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestRootCmd_HelpUsesTemplate(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	help := out.String()
	assert.Contains(t, help, "USAGE")
	assert.Contains(t, help, "--no-link")
	assert.Contains(t, help, "package_name")
	assert.True(t, strings.Contains(help, "version"))
}

func TestFormatting(t *testing.T) {
	if stdoutIsTerminal() {
		t.Skip("stdout is a terminal")
	}
	assert.Equal(t, "usage", formatBold("usage"))
	assert.Equal(t, "stashdot [package_name backup_folder] [flags]",
		formatUseLine("stashdot [package_name backup_folder] [flags]"))
	assert.Equal(t, "USAGE", formatBoldUpper("usage"))
}
