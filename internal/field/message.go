package field

import (
	"protofield-generator/internal/attr"
)

// Attribute names understood by the message field resolver.
const (
	AttrMessage = "message"
	AttrBoxed   = "boxed"
	AttrTag     = "tag"
	AttrLabel   = "label"
)

// KnownAttributes lists every attribute name a message field may carry.
func KnownAttributes() []string {
	names := []string{AttrMessage, AttrBoxed, AttrTag, AttrLabel}
	for _, l := range attr.Labels() {
		names = append(names, l.String())
	}

	return names
}

// Message describes a field whose value is itself a message.
type Message struct {
	Label attr.Label
	Tag   uint32
	// Boxed is carried through for storage layout decisions; it does not
	// change any generated fragment.
	Boxed bool
}

// NewMessage resolves the annotations of a regular struct field. defaultTag,
// when non-nil, is used if the annotations carry no tag of their own.
//
// It returns nil, nil when the annotations lack the message marker.
func NewMessage(attrs []attr.Attribute, defaultTag *uint32) (*Message, error) {
	return resolve(attrs, defaultTag, false)
}

// NewOneofMessage resolves the annotations of a oneof variant. Variants never
// get a positional tag and must not declare a label; the result is always
// required.
func NewOneofMessage(attrs []attr.Attribute) (*Message, error) {
	return resolve(attrs, nil, true)
}

func resolve(attrs []attr.Attribute, defaultTag *uint32, oneof bool) (*Message, error) {
	var (
		message bool
		boxed   bool
		label   *attr.Label
		tag     *uint32
		labels  []attr.Attribute
		unknown []attr.Attribute
		scanErr error
	)

	// Errors found during the scan are held back until the message marker is
	// known: annotations of other field kinds are not ours to reject.
	keep := func(err error) {
		if scanErr == nil {
			scanErr = err
		}
	}

	for _, a := range attrs {
		if attr.Word(AttrMessage, a) {
			keep(attr.SetBool(&message, AttrMessage))
			continue
		}

		if attr.Word(AttrBoxed, a) {
			keep(attr.SetBool(&boxed, AttrBoxed))
			continue
		}

		t, ok, err := attr.Tag(a)
		if err != nil {
			keep(err)
			continue
		}

		if ok {
			keep(attr.SetOption(&tag, t, AttrTag))
			continue
		}

		if l, ok := attr.LabelOf(a); ok {
			labels = append(labels, a)
			keep(attr.SetOption(&label, l, AttrLabel))

			continue
		}

		unknown = append(unknown, a)
	}

	if !message {
		return nil, nil
	}

	if scanErr != nil {
		return nil, scanErr
	}

	if len(unknown) > 0 {
		return nil, &attr.Error{Err: attr.ErrUnrecognizedAttribute, Kind: AttrMessage, Attrs: unknown}
	}

	if tag == nil {
		tag = defaultTag
	}

	if tag == nil {
		return nil, &attr.Error{Err: attr.ErrMissingTag, Kind: AttrMessage}
	}

	f := &Message{
		Label: attr.LabelOptional,
		Tag:   *tag,
		Boxed: boxed,
	}

	if label != nil {
		f.Label = *label
	}

	if oneof {
		if len(labels) > 0 {
			return nil, &attr.Error{Err: attr.ErrInvalidAttribute, Kind: "oneof", Attrs: labels}
		}

		f.Label = attr.LabelRequired
	}

	return f, nil
}
