package main

import (
	"testing"

	"4d63.com/testcli"
	"github.com/stretchr/testify/assert"
)

func TestManPage(t *testing.T) {
	args := []string{"stashdot-manpage"}
	exitCode, stdout, stderr := testcli.Main(t, args, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "", stderr)
	assert.Contains(t, stdout, `.TH "STASHDOT" "1"`)
	assert.Contains(t, stdout, "no-link")
	assert.Contains(t, stdout, "dotfiles_backup/PACKAGE")
	assert.Contains(t, stdout, "archived into FOLDER/PACKAGE")
}
