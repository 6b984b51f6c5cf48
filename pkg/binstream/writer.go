package binstream

import (
	"bufio"
	"encoding/binary"
	"io"

	bin "github.com/saylorsolutions/binmap"
)

type flusher interface {
	Flush() error
}

// Writer is a buffered, sequential cursor over a byte sink.
type Writer struct {
	sink    io.Writer
	buf     *bufio.Writer
	seeker  io.Seeker
	written int64
}

var _ io.Writer = (*Writer)(nil)

// NewWriter wraps sink in a Writer.
// Seek is only effective if sink also implements io.Seeker.
func NewWriter(sink io.Writer) *Writer {
	w := &Writer{
		sink: sink,
		buf:  bufio.NewWriter(sink),
	}
	if seeker, ok := sink.(io.Seeker); ok {
		w.seeker = seeker
	}
	return w
}

// Write implements io.Writer, appending bytes verbatim at the current position.
func (w *Writer) Write(in []byte) (int, error) {
	n, err := w.buf.Write(in)
	w.written += int64(n)
	return n, err
}

// WriteFixed appends val as sizeof(T) little-endian bytes.
func WriteFixed[T Fixed](w *Writer, val T) error {
	out, err := binary.Append(nil, binary.LittleEndian, val)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// WriteUint8 appends a little-endian uint8, see WriteFixed.
func (w *Writer) WriteUint8(val uint8) error {
	return WriteFixed(w, val)
}

// WriteInt32 appends a little-endian int32, see WriteFixed.
func (w *Writer) WriteInt32(val int32) error {
	return WriteFixed(w, val)
}

// WriteUint32 appends a little-endian uint32, see WriteFixed.
func (w *Writer) WriteUint32(val uint32) error {
	return WriteFixed(w, val)
}

// WriteInt64 appends a little-endian int64, see WriteFixed.
func (w *Writer) WriteInt64(val int64) error {
	return WriteFixed(w, val)
}

// WriteUint64 appends a little-endian uint64, see WriteFixed.
func (w *Writer) WriteUint64(val uint64) error {
	return WriteFixed(w, val)
}

// WriteBytes appends buf verbatim.
func (w *Writer) WriteBytes(buf []byte) error {
	_, err := w.Write(buf)
	return err
}

// WriteUTF16 appends the UTF-16LE code units of text with no terminator or length prefix.
func (w *Writer) WriteUTF16(text string) error {
	raw, err := EncodeUTF16(text)
	if err != nil {
		return err
	}
	return w.WriteBytes(raw)
}

// WriteMapped writes a binmap structure in little-endian byte order.
func (w *Writer) WriteMapped(m bin.Mapper) error {
	return m.Write(w, binary.LittleEndian)
}

// Seek flushes pending output and moves the sink to an absolute position.
// If the sink can't seek then this does nothing.
func (w *Writer) Seek(pos int64) error {
	if w.seeker == nil {
		return nil
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := w.seeker.Seek(pos, io.SeekStart)
	return err
}

// Flush makes all buffered bytes visible in the sink.
// If the sink has its own Flush method, that is called too.
func (w *Writer) Flush() error {
	if err := w.buf.Flush(); err != nil {
		return err
	}
	if f, ok := w.sink.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Written reports the number of bytes passed to this Writer.
// Call Flush first if the count is used to inspect the sink.
func (w *Writer) Written() int64 {
	return w.written
}
