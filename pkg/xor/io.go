package xor

import (
	"io"
)

const scratchSize = 32 * 1024

var _ io.Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	scr    *screen
}

// NewReader returns an io.Reader that screens all bytes read from source with key.
func NewReader(source io.Reader, key Key) (io.Reader, error) {
	scr, err := newScreen(key)
	if err != nil {
		return nil, err
	}
	return &reader{
		source: source,
		scr:    scr,
	}, nil
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	r.scr.apply(out[:n])
	return n, err
}

var _ io.Writer = (*writer)(nil)

type writer struct {
	target  io.Writer
	scr     *screen
	scratch []byte
}

// NewWriter returns an io.Writer that screens all bytes with key before writing them to target.
// The caller's slice is never modified.
func NewWriter(target io.Writer, key Key) (io.Writer, error) {
	scr, err := newScreen(key)
	if err != nil {
		return nil, err
	}
	return &writer{
		target: target,
		scr:    scr,
	}, nil
}

func (w *writer) Write(in []byte) (int, error) {
	var written int
	for len(in) > 0 {
		chunk := in
		if len(chunk) > scratchSize {
			chunk = chunk[:scratchSize]
		}
		if cap(w.scratch) < len(chunk) {
			w.scratch = make([]byte, len(chunk))
		}
		buf := w.scratch[:len(chunk)]
		copy(buf, chunk)
		w.scr.apply(buf)
		n, err := w.target.Write(buf)
		written += n
		if err != nil {
			return written, err
		}
		if n < len(buf) {
			return written, io.ErrShortWrite
		}
		in = in[len(chunk):]
	}
	return written, nil
}
