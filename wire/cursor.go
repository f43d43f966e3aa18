package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// RecursionLimit bounds how deeply nested messages may be decoded.
const RecursionLimit = 100

// Cursor is a read position over an encoded message.
type Cursor struct {
	buf   []byte
	depth int
	field protowire.Number // last field number read
}

// NewCursor returns a cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Skip discards the value of an unknown field.
func (c *Cursor) Skip(num protowire.Number, typ protowire.Type) error {
	n := protowire.ConsumeFieldValue(num, typ, c.buf)
	if n < 0 {
		return parseError(num, n)
	}

	c.buf = c.buf[n:]

	return nil
}

// ConsumeBytes reads the value of a length-delimited field.
func (c *Cursor) ConsumeBytes(typ protowire.Type) ([]byte, error) {
	if typ != protowire.BytesType {
		return nil, &DecodeError{Err: ErrWireType, Field: c.field, Type: typ}
	}

	v, n := protowire.ConsumeBytes(c.buf)
	if n < 0 {
		return nil, parseError(c.field, n)
	}

	c.buf = c.buf[n:]

	return v, nil
}

// ConsumeVarint reads the value of a varint field.
func (c *Cursor) ConsumeVarint(typ protowire.Type) (uint64, error) {
	if typ != protowire.VarintType {
		return 0, &DecodeError{Err: ErrWireType, Field: c.field, Type: typ}
	}

	v, n := protowire.ConsumeVarint(c.buf)
	if n < 0 {
		return 0, parseError(c.field, n)
	}

	c.buf = c.buf[n:]

	return v, nil
}

func (c *Cursor) consumeTag() (protowire.Number, protowire.Type, error) {
	num, typ, n := protowire.ConsumeTag(c.buf)
	if n < 0 {
		return 0, 0, parseError(c.field, n)
	}

	c.buf = c.buf[n:]
	c.field = num

	return num, typ, nil
}

// nested returns a cursor over a nested message payload.
func (c *Cursor) nested(payload []byte) (*Cursor, error) {
	if c.depth+1 > RecursionLimit {
		return nil, &DecodeError{Err: ErrRecursionLimit, Field: c.field}
	}

	return &Cursor{buf: payload, depth: c.depth + 1}, nil
}
