package filesystem_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wasixfixture/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func implementations(t *testing.T) map[string]struct {
	fs   filesystem.FS
	base string
} {
	return map[string]struct {
		fs   filesystem.FS
		base string
	}{
		"os":     {fs: filesystem.NewOS(), base: t.TempDir()},
		"memory": {fs: filesystem.NewMemory(), base: "/virtual"},
	}
}

func TestFS_WriteReadRoundTrip(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(impl.base, "src", "lib")
			require.NoError(t, impl.fs.MkdirAll(dir, 0755))

			path := filepath.Join(dir, "mod.rs")
			require.NoError(t, impl.fs.WriteFile(path, []byte("pub fn f() {}"), 0644))

			got, err := impl.fs.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "pub fn f() {}", string(got))

			entries, err := impl.fs.ReadDir(dir)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "mod.rs", entries[0].Name())
		})
	}
}

func TestFS_RemoveAll(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			root := filepath.Join(impl.base, "t0")
			require.NoError(t, impl.fs.MkdirAll(filepath.Join(root, "a"), 0755))
			require.NoError(t, impl.fs.WriteFile(filepath.Join(root, "a", "f"), []byte("x"), 0644))

			require.NoError(t, impl.fs.RemoveAll(root))

			_, err := impl.fs.Stat(root)
			assert.ErrorIs(t, err, fs.ErrNotExist)

			// Removing a missing tree is not an error.
			assert.NoError(t, impl.fs.RemoveAll(root))
		})
	}
}

func TestAferoFS_ReadFileOnDirectory(t *testing.T) {
	memFS := filesystem.NewMemory()
	require.NoError(t, memFS.MkdirAll("/virtual/dir", 0755))

	_, err := memFS.ReadFile("/virtual/dir")
	assert.ErrorIs(t, err, fs.ErrInvalid)
}
