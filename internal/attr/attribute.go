package attr

import (
	"reflect"
	"strconv"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

// DefaultKey is the struct tag key holding field annotations.
const DefaultKey = "proto"

// Reserved field numbers, see protowire.Number.IsValid.
const (
	firstReservedNumber = 19000
	lastReservedNumber  = 19999
)

// Attribute is a single annotation token of a field.
type Attribute struct {
	Name     string // marker or key name, e.g. "message" or "tag"
	Value    string // value of a key/value pair
	HasValue bool   // true for key/value pairs, false for bare markers
}

// String renders the attribute back to its tag form.
func (a Attribute) String() string {
	if !a.HasValue {
		return a.Name
	}

	return a.Name + "=" + a.Value
}

// Parse splits a struct tag value into attributes, preserving order.
func Parse(tag string) ([]Attribute, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, nil
	}

	tokens := strings.Split(tag, ",")
	attrs := make([]Attribute, 0, len(tokens))

	for i, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, &Error{Err: ErrMalformedAttribute, Kind: "empty token at position " + strconv.Itoa(i+1)}
		}

		name, value, found := strings.Cut(token, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &Error{Err: ErrMalformedAttribute, Kind: "missing name in " + strconv.Quote(token)}
		}

		attrs = append(attrs, Attribute{
			Name:     name,
			Value:    strings.TrimSpace(value),
			HasValue: found,
		})
	}

	return attrs, nil
}

// Lookup reads and parses the annotations stored under key in a struct tag.
// It reports false if the key is absent.
func Lookup(tag reflect.StructTag, key string) ([]Attribute, bool, error) {
	value, ok := tag.Lookup(key)
	if !ok {
		return nil, false, nil
	}

	attrs, err := Parse(value)
	if err != nil {
		return nil, true, err
	}

	return attrs, true, nil
}

// Word reports whether a is the bare marker name.
func Word(name string, a Attribute) bool {
	return !a.HasValue && a.Name == name
}

// Tag recognizes a tag=N attribute. It reports false for any other attribute
// and fails if the attribute is a tag with a malformed or out of range value.
func Tag(a Attribute) (uint32, bool, error) {
	if a.Name != "tag" {
		return 0, false, nil
	}

	if !a.HasValue {
		return 0, false, &Error{Err: ErrMalformedTag, Attrs: []Attribute{a}}
	}

	n, err := strconv.ParseUint(strings.Trim(a.Value, `'"`), 10, 32)
	if err != nil {
		return 0, false, &Error{Err: ErrMalformedTag, Attrs: []Attribute{a}, Cause: err}
	}

	if !ValidNumber(uint32(n)) {
		return 0, false, &Error{Err: ErrMalformedTag, Attrs: []Attribute{a}, Cause: errTagRange}
	}

	return uint32(n), true, nil
}

// ValidNumber reports whether n may be used as a field number.
func ValidNumber(n uint32) bool {
	num := protowire.Number(n)

	return num >= protowire.MinValidNumber && num <= protowire.MaxValidNumber &&
		(num < firstReservedNumber || num > lastReservedNumber)
}

// NextNumber returns the first usable field number at or after n, stepping
// over the reserved range. The result exceeds the maximum when none is left.
func NextNumber(n uint32) uint32 {
	if n >= firstReservedNumber && n <= lastReservedNumber {
		return lastReservedNumber + 1
	}

	return n
}
