package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Message is a value that can be written to and merged from the wire format.
type Message interface {
	// EncodeRaw appends the fields of the message, without any enclosing
	// tag or length, to b.
	EncodeRaw(b []byte) []byte
	// MergeField merges a single field occurrence with the given number and
	// wire type. The value is read from c; unknown fields must be skipped.
	MergeField(num protowire.Number, typ protowire.Type, c *Cursor) error
	// EncodedLen returns the number of bytes EncodeRaw appends.
	EncodedLen() int
	// Clear resets the message to its empty state.
	Clear()
}

// Marshal returns the encoding of m.
func Marshal(m Message) []byte {
	return m.EncodeRaw(make([]byte, 0, m.EncodedLen()))
}

// Unmarshal clears m and merges every field of b into it.
func Unmarshal(b []byte, m Message) error {
	m.Clear()

	return MergeFrom(b, m)
}

// MergeFrom merges every field of b into m without clearing it first.
func MergeFrom(b []byte, m Message) error {
	return mergeFields(m, NewCursor(b))
}

func mergeFields(m Message, c *Cursor) error {
	for c.Len() > 0 {
		num, typ, err := c.consumeTag()
		if err != nil {
			return err
		}

		if err := m.MergeField(num, typ, c); err != nil {
			return err
		}
	}

	return nil
}
