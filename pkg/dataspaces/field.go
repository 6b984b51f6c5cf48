package dataspaces

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
	"github.com/saylorsolutions/xorpkg/pkg/binstream"
)

const (
	fieldAlignment = 4
	maxFieldLength = 1 << 16
)

var (
	ErrInvalidField = errors.New("invalid encoded field")
	ErrUnsupported  = errors.New("unsupported dataspaces structure")
)

// Padding returns the number of zero bytes that follow byteLen bytes of text, so that the field (including its 4-byte length prefix) is 4-byte aligned.
func Padding(byteLen int) int {
	return (fieldAlignment - byteLen%fieldAlignment) % fieldAlignment
}

var _ bin.Mapper = (*encodedField)(nil)

type encodedField struct {
	text *string
}

// Field maps a length-prefixed, 4-byte aligned UTF-16 text field.
func Field(text *string) bin.Mapper {
	return &encodedField{text: text}
}

func (f *encodedField) Write(w io.Writer, endian binary.ByteOrder) error {
	raw, err := binstream.EncodeUTF16(*f.text)
	if err != nil {
		return err
	}
	length := uint32(len(raw))
	if err := bin.Int(&length).Write(w, endian); err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}
	if pad := Padding(len(raw)); pad > 0 {
		if _, err := w.Write(make([]byte, pad)); err != nil {
			return err
		}
	}
	return nil
}

func (f *encodedField) Read(r io.Reader, endian binary.ByteOrder) error {
	var length uint32
	if err := bin.Int(&length).Read(r, endian); err != nil {
		return err
	}
	if length > maxFieldLength {
		return fmt.Errorf("%w: length %d exceeds %d", ErrInvalidField, length, maxFieldLength)
	}
	if length%2 != 0 {
		return fmt.Errorf("%w: odd UTF-16 byte length %d", ErrInvalidField, length)
	}
	raw := make([]byte, int(length)+Padding(int(length)))
	if _, err := io.ReadFull(r, raw); err != nil {
		return err
	}
	text, err := binstream.DecodeUTF16(raw[:length])
	if err != nil {
		return err
	}
	*f.text = text
	return nil
}

// FieldSize returns the encoded size of text as an EncodedField, including the length prefix and padding.
func FieldSize(text string) (int, error) {
	raw, err := binstream.EncodeUTF16(text)
	if err != nil {
		return 0, err
	}
	return 4 + len(raw) + Padding(len(raw)), nil
}
