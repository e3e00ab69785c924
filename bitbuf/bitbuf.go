// Package bitbuf implements the bit-level length-prefixed framing used by
// the RSA key serialization wire format: a sequence of length-prefixed
// byte fields, each prefix a 32-bit little-endian bit count written ahead
// of its field's raw bytes.
package bitbuf

import (
	"encoding/binary"
	"fmt"
)

// Writer accumulates length-prefixed fields into a single byte buffer.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteField appends a 32-bit little-endian bit-length prefix (the bit
// length of field, i.e. len(field)*8) followed by field's raw bytes.
func (w *Writer) WriteField(field []byte) {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(field))*8)
	w.buf = append(w.buf, lenBuf[:]...)
	w.buf = append(w.buf, field...)
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Reader consumes length-prefixed fields from a byte buffer in order.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// ReadField reads the next length-prefixed field.
func (r *Reader) ReadField() ([]byte, error) {
	if r.pos+4 > len(r.buf) {
		return nil, fmt.Errorf("bitbuf: truncated length prefix at offset %d", r.pos)
	}
	bitLen := binary.LittleEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	byteLen := int((bitLen + 7) / 8)
	if r.pos+byteLen > len(r.buf) {
		return nil, fmt.Errorf("bitbuf: truncated field at offset %d (need %d bytes)", r.pos, byteLen)
	}
	field := r.buf[r.pos : r.pos+byteLen]
	r.pos += byteLen
	return field, nil
}

// Remaining reports whether unread bytes remain.
func (r *Reader) Remaining() bool {
	return r.pos < len(r.buf)
}
