package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, ".bashrc")
	require.NoError(t, fs.WriteFile(testFile, []byte("export A=1"), 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, ".bashrc", info.Name())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "export A=1", string(content))

	require.NoError(t, fs.MkdirAll(filepath.Join(tmpDir, "backup", "git"), 0755))

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	moved := filepath.Join(tmpDir, "backup", "git", ".bashrc")
	require.NoError(t, fs.Rename(testFile, moved))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
	_, err = fs.Stat(moved)
	assert.NoError(t, err)
}

func TestOSFS_LstatSeesSymlink(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()

	realDir := filepath.Join(tmpDir, "vim-real")
	require.NoError(t, fs.MkdirAll(realDir, 0755))
	link := filepath.Join(tmpDir, ".vim")
	require.NoError(t, fs.Symlink(realDir, link))

	linfo, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, linfo.Mode()&os.ModeSymlink, "Lstat should report the link itself")

	sinfo, err := fs.Stat(link)
	require.NoError(t, err)
	assert.True(t, sinfo.IsDir(), "Stat should follow the link")

	target, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, realDir, target)
}

func TestAferoFS_Memory(t *testing.T) {
	fs := NewMemory()

	require.NoError(t, fs.MkdirAll("/home/.config", 0755))
	require.NoError(t, fs.WriteFile("/home/.config/foo", []byte("foo"), 0644))

	info, err := fs.Lstat("/home/.config/foo")
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	_, err = fs.ReadFile("/home/.config")
	assert.Error(t, err, "reading a directory should fail")

	entries, err := fs.ReadDir("/home")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".config", entries[0].Name())
	assert.True(t, entries[0].IsDir())

	require.NoError(t, fs.MkdirAll("/backup", 0755))
	require.NoError(t, fs.Rename("/home/.config/foo", "/backup/foo"))
	data, err := fs.ReadFile("/backup/foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", string(data))
}

func TestAferoFS_SymlinkUnsupported(t *testing.T) {
	fs := NewMemory()

	err := fs.Symlink("/a", "/b")
	assert.ErrorIs(t, err, afero.ErrNoSymlink)

	_, err = fs.Readlink("/b")
	assert.ErrorIs(t, err, afero.ErrNoReadlink)
}

func TestAferoFS_OsBacked(t *testing.T) {
	tmpDir := t.TempDir()
	fs := NewAferoFS(afero.NewOsFs())

	realFile := filepath.Join(tmpDir, "real")
	require.NoError(t, fs.WriteFile(realFile, []byte("x"), 0644))
	link := filepath.Join(tmpDir, ".link")
	require.NoError(t, fs.Symlink(realFile, link))

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	target, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, realFile, target)
}
