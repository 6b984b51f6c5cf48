package binstream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
)

// Fixed is the set of fixed width integer types that may be read or written directly.
type Fixed interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Reader is a sequential cursor over a byte source.
type Reader struct {
	source io.Reader
	seeker io.Seeker
}

var _ io.Reader = (*Reader)(nil)

// NewReader wraps source in a Reader.
// Seeking and size queries are only available if source also implements io.Seeker.
func NewReader(source io.Reader) *Reader {
	r := &Reader{source: source}
	if seeker, ok := source.(io.Seeker); ok {
		r.seeker = seeker
	}
	return r
}

// Read implements io.Reader by reading directly from the underlying source.
func (r *Reader) Read(out []byte) (int, error) {
	return r.source.Read(out)
}

// ReadFixed reads a little-endian value of type T from r.
// ErrShortRead is returned if fewer than sizeof(T) bytes are available.
func ReadFixed[T Fixed](r *Reader) (T, error) {
	var val T
	buf := make([]byte, binary.Size(val))
	n, err := io.ReadFull(r.source, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return val, fmt.Errorf("%w: wanted %d bytes, got %d", ErrShortRead, len(buf), n)
		}
		return val, err
	}
	if _, err := binary.Decode(buf, binary.LittleEndian, &val); err != nil {
		return val, err
	}
	return val, nil
}

// ReadUint8 reads a little-endian uint8, see ReadFixed.
func (r *Reader) ReadUint8() (uint8, error) {
	return ReadFixed[uint8](r)
}

// ReadInt32 reads a little-endian int32, see ReadFixed.
func (r *Reader) ReadInt32() (int32, error) {
	return ReadFixed[int32](r)
}

// ReadUint32 reads a little-endian uint32, see ReadFixed.
func (r *Reader) ReadUint32() (uint32, error) {
	return ReadFixed[uint32](r)
}

// ReadInt64 reads a little-endian int64, see ReadFixed.
func (r *Reader) ReadInt64() (int64, error) {
	return ReadFixed[int64](r)
}

// ReadUint64 reads a little-endian uint64, see ReadFixed.
func (r *Reader) ReadUint64() (uint64, error) {
	return ReadFixed[uint64](r)
}

// ReadBytes reads up to n bytes.
// If the source is exhausted first, the bytes that were available are returned without an error.
// Callers that need exactly n bytes must check the length of the result.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(r.source, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return buf[:read], err
	}
	return buf[:read], nil
}

// ReadUTF16 reads lengthInBytes raw bytes and decodes them as UTF-16LE.
// An odd length leaves a dangling byte, which is dropped.
func (r *Reader) ReadUTF16(lengthInBytes int) (string, error) {
	raw, err := r.ReadBytes(lengthInBytes)
	if err != nil {
		return "", err
	}
	return DecodeUTF16(raw)
}

// ReadMapped reads a little-endian binmap structure from the source.
func (r *Reader) ReadMapped(m bin.Mapper) error {
	if err := m.Read(r.source, binary.LittleEndian); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %v", ErrShortRead, err)
		}
		return err
	}
	return nil
}

// Skip moves the cursor n bytes relative to its current position.
func (r *Reader) Skip(n int64) error {
	if r.seeker == nil {
		return ErrNotSeekable
	}
	_, err := r.seeker.Seek(n, io.SeekCurrent)
	return err
}

// Seek moves the cursor to an absolute position.
func (r *Reader) Seek(pos int64) error {
	if r.seeker == nil {
		return ErrNotSeekable
	}
	_, err := r.seeker.Seek(pos, io.SeekStart)
	return err
}

// Position returns the current cursor position.
func (r *Reader) Position() (int64, error) {
	if r.seeker == nil {
		return 0, ErrNotSeekable
	}
	return r.seeker.Seek(0, io.SeekCurrent)
}

// Size returns the total length of the source, regardless of the cursor position.
// The cursor is left where it was.
func (r *Reader) Size() (int64, error) {
	cur, err := r.Position()
	if err != nil {
		return 0, err
	}
	end, err := r.seeker.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := r.seeker.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}

// Remaining returns the number of bytes between the cursor and the end of the source.
func (r *Reader) Remaining() (int64, error) {
	cur, err := r.Position()
	if err != nil {
		return 0, err
	}
	size, err := r.Size()
	if err != nil {
		return 0, err
	}
	if size < cur {
		return 0, nil
	}
	return size - cur, nil
}
