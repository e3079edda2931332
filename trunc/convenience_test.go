package trunc_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iokit/trunckit/trunc"
)

func TestReset(t *testing.T) {
	b := trunc.NewBuffer([]byte{0, 1, 2, 3})
	require.NoError(t, trunc.Reset(b))
	assert.Zero(t, b.Len())
}

func TestHead(t *testing.T) {
	data := []byte{0, 1, 2, 3}

	head, err := trunc.Head(data, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2}, head)

	// Same storage, not a copy.
	data[0] = 9
	assert.Equal(t, byte(9), head[0])

	_, err = trunc.Head(data, 5)
	require.Error(t, err)
	assert.True(t, trunc.IsInvalidSize(err))
}

func TestShrinkFile(t *testing.T) {
	path := writeTempFile(t, []byte("Hello, World!"))

	require.NoError(t, trunc.ShrinkFile(path, 5))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(data))
}

func TestShrinkFile_MissingFile(t *testing.T) {
	err := trunc.ShrinkFile("/nonexistent/data.bin", 0)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
