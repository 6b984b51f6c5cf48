package binstream

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadFixed(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{
		0x08, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xff,
	}))
	i32, err := r.ReadInt32()
	assert.NoError(t, err)
	assert.Equal(t, int32(8), i32)

	u64, err := r.ReadUint64()
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), u64)

	b, err := r.ReadUint8()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xff), b)
}

func TestReader_ReadFixed_Short(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03}))
	_, err := r.ReadUint32()
	assert.ErrorIs(t, err, ErrShortRead)

	r = NewReader(bytes.NewReader(nil))
	_, err = r.ReadInt64()
	assert.ErrorIs(t, err, ErrShortRead)
}

func TestReader_ReadBytes_Tolerant(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03}))
	got, err := r.ReadBytes(2)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, got)

	got, err = r.ReadBytes(10)
	assert.NoError(t, err, "Short array reads are not an error")
	assert.Equal(t, []byte{0x03}, got)

	got, err = r.ReadBytes(1)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestReader_ReadUTF16(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{'A', 0, 'B', 0, 'C'}))
	text, err := r.ReadUTF16(5)
	assert.NoError(t, err)
	assert.Equal(t, "AB", text, "Dangling byte should be dropped")
}

func TestReader_Seek(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0, 1, 2, 3, 4, 5, 6, 7}))
	size, err := r.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(8), size)

	require.NoError(t, r.Skip(2))
	b, err := r.ReadUint8()
	assert.NoError(t, err)
	assert.Equal(t, uint8(2), b)

	pos, err := r.Position()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), pos)

	size, err = r.Size()
	assert.NoError(t, err)
	assert.Equal(t, int64(8), size, "Size should not depend on the cursor")
	remaining, err := r.Remaining()
	assert.NoError(t, err)
	assert.Equal(t, int64(5), remaining)

	require.NoError(t, r.Seek(6))
	b, err = r.ReadUint8()
	assert.NoError(t, err)
	assert.Equal(t, uint8(6), b)
}

func TestReader_NotSeekable(t *testing.T) {
	r := NewReader(io.MultiReader(strings.NewReader("abc")))
	_, err := r.Size()
	assert.ErrorIs(t, err, ErrNotSeekable)
	assert.ErrorIs(t, r.Skip(1), ErrNotSeekable)
	assert.ErrorIs(t, r.Seek(0), ErrNotSeekable)
	_, err = r.Position()
	assert.ErrorIs(t, err, ErrNotSeekable)

	got, err := r.ReadBytes(3)
	assert.NoError(t, err, "Sequential reads should still work")
	assert.Equal(t, []byte("abc"), got)
}
