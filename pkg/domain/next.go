package domain

import (
	"encoding/json"
	"fmt"
)

// EndMarker is the wire representation of the distinguished "no further
// question" target. A question cannot use it as an ID.
const EndMarker = "end"

type nextKind uint8

const (
	nextUnset nextKind = iota
	nextEnd
	nextGoTo
)

// NextRef is a tri-state reference to the next question:
//
//   - not configured (the zero value): the author left the field empty
//     and the resolver falls back to structural list order;
//   - End: the flow stops here explicitly;
//   - GoTo(id): jump to a specific question.
//
// Modeling the three states explicitly avoids the null/undefined
// ambiguity the same data carries in loosely typed runtimes.
type NextRef struct {
	kind nextKind
	id   string
}

// End is the explicit end-of-form reference.
var End = NextRef{kind: nextEnd}

// GoTo returns a reference targeting the question with the given ID.
// The ID is not validated here; dangling targets degrade at traversal
// time instead of failing the author.
func GoTo(id string) NextRef {
	return NextRef{kind: nextGoTo, id: id}
}

// IsConfigured reports whether the author set the reference at all.
func (n NextRef) IsConfigured() bool { return n.kind != nextUnset }

// IsEnd reports whether the reference is the explicit end marker.
func (n NextRef) IsEnd() bool { return n.kind == nextEnd }

// Target returns the referenced question ID. The bool is false unless
// the reference is a GoTo.
func (n NextRef) Target() (string, bool) {
	if n.kind != nextGoTo {
		return "", false
	}
	return n.id, true
}

// String implements fmt.Stringer for logs and debug output.
func (n NextRef) String() string {
	switch n.kind {
	case nextEnd:
		return EndMarker
	case nextGoTo:
		return n.id
	default:
		return "<unset>"
	}
}

// MarshalJSON encodes the reference as null, "end", or the target ID.
func (n NextRef) MarshalJSON() ([]byte, error) {
	switch n.kind {
	case nextEnd:
		return json.Marshal(EndMarker)
	case nextGoTo:
		return json.Marshal(n.id)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes null and "" as not-configured, the EndMarker
// sentinel as End, and any other string as a GoTo target.
func (n *NextRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = NextRef{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("next ref must be a string or null: %w", err)
	}
	*n = fromWire(s)
	return nil
}

// MarshalYAML mirrors the JSON encoding.
func (n NextRef) MarshalYAML() (any, error) {
	switch n.kind {
	case nextEnd:
		return EndMarker, nil
	case nextGoTo:
		return n.id, nil
	default:
		return nil, nil
	}
}

// UnmarshalYAML mirrors the JSON decoding.
func (n *NextRef) UnmarshalYAML(unmarshal func(any) error) error {
	var s *string
	if err := unmarshal(&s); err != nil {
		return fmt.Errorf("next ref must be a string or null: %w", err)
	}
	if s == nil {
		*n = NextRef{}
		return nil
	}
	*n = fromWire(*s)
	return nil
}

// ParseNext converts the wire form of a reference — "", "end", or a
// question ID — into a NextRef. Loaders that decode generic documents
// use this instead of the JSON/YAML codecs.
func ParseNext(s string) NextRef {
	return fromWire(s)
}

func fromWire(s string) NextRef {
	switch s {
	case "":
		return NextRef{}
	case EndMarker:
		return End
	default:
		return GoTo(s)
	}
}
