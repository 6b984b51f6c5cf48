package xor

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	data := "A string with some text"
	key := Key{0xde, 0xad, 0xbe, 0xef}
	var output strings.Builder

	in, err := NewReader(strings.NewReader(data), key)
	assert.NoError(t, err)
	assert.NotNil(t, in)

	out, err := NewWriter(&output, key)
	assert.NoError(t, err)
	assert.NotNil(t, out)

	n, err := io.Copy(out, in)
	assert.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, data, output.String())
}

func TestWriter_DoesNotModifyInput(t *testing.T) {
	var (
		out bytes.Buffer
		in  = []byte{0x41, 0x42, 0x43}
	)
	w, err := NewWriter(&out, DefaultKey)
	require.NoError(t, err)
	n, err := w.Write(in)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{0x41, 0x42, 0x43}, in)
	assert.Equal(t, []byte{0x3e, 0x3d, 0x3c}, out.Bytes())
}

func TestWriter_LargeWrite(t *testing.T) {
	var out bytes.Buffer
	in := bytes.Repeat([]byte{0x7f}, 3*scratchSize+5)
	w, err := NewWriter(&out, DefaultKey)
	require.NoError(t, err)
	n, err := w.Write(in)
	assert.NoError(t, err)
	assert.Equal(t, len(in), n)
	assert.Equal(t, make([]byte, len(in)), out.Bytes())
}

func TestReader_KeyContinuesAcrossReads(t *testing.T) {
	r, err := NewReader(bytes.NewReader([]byte{0, 0, 0}), Key{0x1, 0x2})
	require.NoError(t, err)
	first := make([]byte, 1)
	_, err = r.Read(first)
	assert.NoError(t, err)
	rest, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x1}, first)
	assert.Equal(t, []byte{0x2, 0x1}, rest)
}
