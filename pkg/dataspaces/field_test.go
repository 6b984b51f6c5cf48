package dataspaces

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadding(t *testing.T) {
	assert.Equal(t, 0, Padding(0))
	assert.Equal(t, 3, Padding(1))
	assert.Equal(t, 2, Padding(2))
	assert.Equal(t, 1, Padding(3))
	assert.Equal(t, 0, Padding(4))
	assert.Equal(t, 2, Padding(62))
	assert.Equal(t, 0, Padding(76))
}

func TestField_Alignment(t *testing.T) {
	for i := 0; i < 12; i++ {
		text := strings.Repeat("x", i)
		var buf bytes.Buffer
		require.NoError(t, Field(&text).Write(&buf, binary.LittleEndian))
		assert.Equal(t, 0, buf.Len()%4, "Field for %q is not aligned", text)

		size, err := FieldSize(text)
		assert.NoError(t, err)
		assert.Equal(t, buf.Len(), size)
	}
}

func TestField_Write(t *testing.T) {
	var (
		buf  bytes.Buffer
		text = "abc"
	)
	require.NoError(t, Field(&text).Write(&buf, binary.LittleEndian))
	assert.Equal(t, []byte{
		0x06, 0x00, 0x00, 0x00,
		'a', 0, 'b', 0, 'c', 0,
		0x00, 0x00,
	}, buf.Bytes())
}

func TestField_Read(t *testing.T) {
	var (
		text string
		data = []byte{
			0x06, 0x00, 0x00, 0x00,
			'a', 0, 'b', 0, 'c', 0,
			0x00, 0x00,
			0xff,
		}
		r = bytes.NewReader(data)
	)
	require.NoError(t, Field(&text).Read(r, binary.LittleEndian))
	assert.Equal(t, "abc", text)
	assert.Equal(t, 1, r.Len(), "Padding should have been consumed")
}

func TestField_Read_Neg(t *testing.T) {
	var text string
	err := Field(&text).Read(bytes.NewReader([]byte{0x03, 0x00, 0x00, 0x00, 'a', 0, 'b', 0}), binary.LittleEndian)
	assert.ErrorIs(t, err, ErrInvalidField)

	err = Field(&text).Read(bytes.NewReader([]byte{0x00, 0x00, 0x02, 0x00}), binary.LittleEndian)
	assert.ErrorIs(t, err, ErrInvalidField)

	err = Field(&text).Read(bytes.NewReader([]byte{0x08, 0x00, 0x00, 0x00, 'a', 0}), binary.LittleEndian)
	assert.Error(t, err)
}
