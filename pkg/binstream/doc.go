/*
Package binstream provides a sequential cursor over a byte source or sink, with the primitive encodings used by the DataSpaces container format.

# Encoding rules:

  - All fixed width integers are little-endian.
  - Text is written as UTF-16LE code units, without a byte order mark, terminator, or length prefix. Callers add the prefix themselves.
  - Fixed width reads are strict and fail with ErrShortRead, while byte array and text reads return whatever was available.

Seeking and size queries require the wrapped source to implement io.Seeker, otherwise ErrNotSeekable is returned.
A Writer buffers its output, so Flush must be called before the sink is inspected.

Neither Reader nor Writer is safe for concurrent use.
*/
package binstream
