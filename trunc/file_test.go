package trunc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iokit/trunckit/trunc"
)

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestFile_TruncateShrinks(t *testing.T) {
	path := writeTempFile(t, []byte{0, 1, 2, 3})

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)
	defer f.Close()

	// *os.File is used through the contract, not a wrapper.
	var tr trunc.Truncator = f
	require.NoError(t, tr.Truncate(3))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2}, data)
}

func TestFile_TruncateMayGrow(t *testing.T) {
	// Unlike Buffer and View, files follow the platform call, which
	// extends with zero bytes on this platform.
	path := writeTempFile(t, []byte{0, 1, 2, 3})

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.Truncate(8))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 3, 0, 0, 0, 0}, data)
}

func TestFile_ErrorSurfacesUnchanged(t *testing.T) {
	path := writeTempFile(t, []byte{0, 1, 2, 3})

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	err = f.Truncate(2)
	require.Error(t, err)

	var pathErr *os.PathError
	assert.ErrorAs(t, err, &pathErr, "platform error should pass through untranslated")
	assert.False(t, trunc.IsInvalidSize(err))
}

func TestCursor_OverFile(t *testing.T) {
	path := writeTempFile(t, []byte{0, 1, 2, 3})

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)
	defer f.Close()

	c := trunc.NewCursor(f)
	c.SetPosition(4)

	require.NoError(t, c.Truncate(3))
	assert.Equal(t, int64(3), c.Position())

	info, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size())
}
