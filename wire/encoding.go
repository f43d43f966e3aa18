package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Encode appends m as a length-delimited field with the given tag.
func Encode(tag uint32, m Message, b []byte) []byte {
	b = protowire.AppendTag(b, protowire.Number(tag), protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(m.EncodedLen()))

	return m.EncodeRaw(b)
}

// Merge reads one length-delimited occurrence from c and merges its fields
// into m.
func Merge(typ protowire.Type, m Message, c *Cursor) error {
	payload, err := c.ConsumeBytes(typ)
	if err != nil {
		return err
	}

	nested, err := c.nested(payload)
	if err != nil {
		return err
	}

	return mergeFields(m, nested)
}

// MergeRepeated reads one occurrence from c into a new element and appends it
// to s.
func MergeRepeated[T any, P interface {
	*T
	Message
}](typ protowire.Type, s *[]P, c *Cursor) error {
	m := P(new(T))
	if err := Merge(typ, m, c); err != nil {
		return err
	}

	*s = append(*s, m)

	return nil
}

// EncodedLen returns the size of m encoded as a field with the given tag.
func EncodedLen(tag uint32, m Message) int {
	return protowire.SizeTag(protowire.Number(tag)) + protowire.SizeBytes(m.EncodedLen())
}

// EncodedLenRepeated returns the size of every element of s encoded as a
// field with the given tag.
func EncodedLenRepeated[P Message](tag uint32, s []P) int {
	n := 0
	for _, m := range s {
		n += EncodedLen(tag, m)
	}

	return n
}

// Ensure returns the message stored in an optional field, allocating an
// empty one first if the field is absent.
func Ensure[T any](p **T) *T {
	if *p == nil {
		*p = new(T)
	}

	return *p
}
