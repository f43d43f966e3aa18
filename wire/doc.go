// Package wire is the runtime library called by code that protofield-generator
// emits. It implements the length-delimited message encoding of the protobuf
// wire format on top of google.golang.org/protobuf/encoding/protowire.
//
// Generated types implement Message. A message field with tag N is written as
// the tag (N, bytes wire type), the varint length of the nested message, and
// the nested message body:
//
//	b = wire.Encode(2, m.Owner, b)                  // write
//	err = wire.Merge(typ, wire.Ensure(&m.Owner), c) // read one occurrence
//	n += wire.EncodedLen(2, m.Owner)                // size
//
// Repeated fields repeat the tag once per element. MergeRepeated appends
// exactly one element per occurrence, so elements keep their arrival order.
//
// Decoding failures are returned as *DecodeError values wrapping one of the
// sentinel errors in this package.
package wire
