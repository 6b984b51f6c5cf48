// Package transform applies the reversible XOR package transform to an EncryptedPackage payload.
//
// An encrypted payload is an 8-byte little-endian plaintext length followed by the screened bytes.
// The transform is not authenticated, any corruption in the payload is carried through to the recovered plaintext.
package transform

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/saylorsolutions/xorpkg/pkg/binstream"
	"github.com/saylorsolutions/xorpkg/pkg/xor"
)

// HeaderSize is the size of the plaintext length header that precedes the payload.
const HeaderSize = 8

// Option configures a Transform, and is used with New.
// If any Option returns an error, then construction stops and the error is returned.
type Option = func(*Transform) error

// WithKey overrides the default XOR key of 0x7F.
func WithKey(key ...byte) Option {
	return func(t *Transform) error {
		k := xor.Key(key)
		if err := k.Validate(); err != nil {
			return err
		}
		t.key = k
		return nil
	}
}

// Transform holds the immutable key used to screen payloads.
// It's safe to use concurrently, provided each call uses its own streams.
type Transform struct {
	key xor.Key
}

// New creates a Transform using the options provided as zero or more Option.
func New(opts ...Option) (*Transform, error) {
	t := &Transform{
		key: xor.DefaultKey,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Key returns a copy of the configured key.
func (t *Transform) Key() xor.Key {
	return append(xor.Key(nil), t.key...)
}

// Encrypt writes the plaintext length of src, followed by every remaining byte of src screened with the key.
// The source must be seekable, so its length can be known up front.
// It returns the number of plaintext bytes transformed.
func (t *Transform) Encrypt(dst io.Writer, src io.Reader) (int64, error) {
	in := binstream.NewReader(src)
	size, err := in.Remaining()
	if err != nil {
		return 0, err
	}
	out := binstream.NewWriter(dst)
	if err := out.WriteUint64(uint64(size)); err != nil {
		return 0, err
	}
	n, err := t.screen(out, in, size)
	if err != nil {
		return n, err
	}
	return n, out.Flush()
}

// Decrypt skips the length header of src, then writes every remaining byte screened with the key.
//
// The number of bytes transformed comes from the source's size less the header, not from the header itself.
// If the two disagree, the output is sized by the source and no error is returned.
func (t *Transform) Decrypt(dst io.Writer, src io.Reader) (int64, error) {
	in := binstream.NewReader(src)
	if _, err := in.ReadUint64(); err != nil {
		return 0, fmt.Errorf("failed to read payload length header: %w", err)
	}
	size, err := in.Remaining()
	if err != nil {
		return 0, err
	}
	out := binstream.NewWriter(dst)
	n, err := t.screen(out, in, size)
	if err != nil {
		return n, err
	}
	return n, out.Flush()
}

func (t *Transform) screen(out io.Writer, in io.Reader, size int64) (int64, error) {
	screened, err := xor.NewWriter(out, t.key)
	if err != nil {
		return 0, err
	}
	n, err := io.CopyN(screened, in, size)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, fmt.Errorf("%w: expected %d payload bytes, got %d", binstream.ErrShortRead, size, n)
		}
		return n, err
	}
	return n, nil
}

// EncryptBytes is a convenience wrapper around Encrypt for in-memory payloads.
func (t *Transform) EncryptBytes(plaintext []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(plaintext))
	if _, err := t.Encrypt(&buf, bytes.NewReader(plaintext)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecryptBytes is a convenience wrapper around Decrypt for in-memory payloads.
func (t *Transform) DecryptBytes(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := t.Decrypt(&buf, bytes.NewReader(payload)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeclaredSize returns the plaintext length recorded in a payload header.
func DeclaredSize(payload []byte) (uint64, error) {
	return binstream.NewReader(bytes.NewReader(payload)).ReadUint64()
}
