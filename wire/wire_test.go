package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

// leaf has a single varint field.
type leaf struct {
	V uint64
}

func (l *leaf) EncodeRaw(b []byte) []byte {
	if l.V == 0 {
		return b
	}

	b = protowire.AppendTag(b, 1, protowire.VarintType)

	return protowire.AppendVarint(b, l.V)
}

func (l *leaf) MergeField(num protowire.Number, typ protowire.Type, c *Cursor) error {
	if num != 1 {
		return c.Skip(num, typ)
	}

	v, err := c.ConsumeVarint(typ)
	l.V = v

	return err
}

func (l *leaf) EncodedLen() int {
	if l.V == 0 {
		return 0
	}

	return protowire.SizeTag(1) + protowire.SizeVarint(l.V)
}

func (l *leaf) Clear() { l.V = 0 }

// node uses the runtime helpers the way generated code does.
type node struct {
	Child *node   // optional, tag 1
	Items []*leaf // repeated, tag 2
	Head  leaf    // required, tag 3
}

func (n *node) EncodeRaw(b []byte) []byte {
	if n.Child != nil {
		b = Encode(1, n.Child, b)
	}

	for _, msg := range n.Items {
		b = Encode(2, msg, b)
	}

	return Encode(3, &n.Head, b)
}

func (n *node) MergeField(num protowire.Number, typ protowire.Type, c *Cursor) error {
	switch num {
	case 1:
		return Merge(typ, Ensure(&n.Child), c)
	case 2:
		return MergeRepeated(typ, &n.Items, c)
	case 3:
		return Merge(typ, &n.Head, c)
	default:
		return c.Skip(num, typ)
	}
}

func (n *node) EncodedLen() int {
	size := 0
	if n.Child != nil {
		size += EncodedLen(1, n.Child)
	}

	size += EncodedLenRepeated(2, n.Items)
	size += EncodedLen(3, &n.Head)

	return size
}

func (n *node) Clear() {
	n.Child = nil
	n.Items = n.Items[:0]
	n.Head.Clear()
}

func chain(depth int) *node {
	root := &node{}
	for cur := root; depth > 0; depth-- {
		cur.Child = &node{}
		cur = cur.Child
	}

	return root
}

func TestEncodedLenMatchesEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  *node
	}{
		{name: "empty", msg: &node{}},
		{name: "optional present", msg: &node{Child: &node{Head: leaf{V: 300}}}},
		{name: "repeated", msg: &node{Items: []*leaf{{V: 1}, {V: 1 << 40}, {}}}},
		{name: "large required", msg: &node{Head: leaf{V: 1<<64 - 1}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Len(t, Marshal(tt.msg), tt.msg.EncodedLen())
			assert.Equal(t, EncodedLen(7, tt.msg), len(Encode(7, tt.msg, nil)))
		})
	}
}

func TestEncodedLenRepeated(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, EncodedLenRepeated[*leaf](3, nil))

	items := []*leaf{{V: 1}, {V: 200}, {V: 70000}}

	sum := 0
	for _, it := range items {
		sum += EncodedLen(3, it)
	}

	assert.Equal(t, sum, EncodedLenRepeated(3, items))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	msg := &node{
		Child: &node{Items: []*leaf{{V: 5}}},
		Items: []*leaf{{V: 1}, {V: 2}, {V: 3}},
		Head:  leaf{V: 42},
	}

	var got node
	require.NoError(t, Unmarshal(Marshal(msg), &got))
	assert.Equal(t, msg, &got)
}

func TestUnmarshalClearsFirst(t *testing.T) {
	t.Parallel()

	got := &node{Child: &node{}, Items: []*leaf{{V: 9}}, Head: leaf{V: 9}}
	require.NoError(t, Unmarshal(Marshal(&node{Items: []*leaf{{V: 1}}}), got))

	assert.Nil(t, got.Child)
	assert.Equal(t, []*leaf{{V: 1}}, got.Items)
	assert.Equal(t, leaf{}, got.Head)
}

func TestMergeFromAppendsRepeated(t *testing.T) {
	t.Parallel()

	got := &node{Items: []*leaf{{V: 1}}}
	require.NoError(t, MergeFrom(Marshal(&node{Items: []*leaf{{V: 2}, {V: 3}}}), got))

	assert.Equal(t, []*leaf{{V: 1}, {V: 2}, {V: 3}}, got.Items)
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	var p *leaf
	first := Ensure(&p)
	require.NotNil(t, first)
	assert.Same(t, first, p)
	assert.Same(t, first, Ensure(&p))
}

func TestRecursionLimit(t *testing.T) {
	t.Parallel()

	// The deepest node also carries its required Head one level further down.
	var got node
	require.NoError(t, Unmarshal(Marshal(chain(RecursionLimit-1)), &got))

	err := Unmarshal(Marshal(chain(RecursionLimit)), &got)
	require.ErrorIs(t, err, ErrRecursionLimit)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	wrongType := protowire.AppendTag(nil, 1, protowire.VarintType)
	wrongType = protowire.AppendVarint(wrongType, 1)

	tests := []struct {
		name string
		data []byte
		err  error
		msg  string
	}{
		{
			name: "truncated length",
			data: []byte{0x0a},
			err:  ErrTruncated,
		},
		{
			name: "truncated payload",
			data: []byte{0x0a, 0x05, 0x08},
			err:  ErrTruncated,
		},
		{
			name: "field number zero",
			data: []byte{0x00},
			err:  ErrMalformed,
		},
		{
			name: "wrong wire type",
			data: wrongType,
			err:  ErrWireType,
			msg:  "decode: field 1: unexpected wire type 0",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got node
			err := Unmarshal(tt.data, &got)
			require.ErrorIs(t, err, tt.err)

			var de *DecodeError
			require.ErrorAs(t, err, &de)

			if tt.msg != "" {
				assert.Equal(t, tt.msg, err.Error())
			}
		})
	}
}

func TestSkipUnknown(t *testing.T) {
	t.Parallel()

	b := protowire.AppendTag(nil, 50, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 7)
	b = append(b, Marshal(&node{Head: leaf{V: 1}})...)

	var got node
	require.NoError(t, Unmarshal(b, &got))
	assert.Equal(t, uint64(1), got.Head.V)
}
