package domain

import (
	"encoding/json"
	"fmt"
)

// Operator is the comparison applied between a condition source answer
// and the configured condition value.
type Operator string

const (
	// OpEquals matches on string equality, or list membership when the
	// answer is a list.
	OpEquals Operator = "equals"
	// OpNotEquals is the negation of the OpEquals test.
	OpNotEquals Operator = "not_equals"
	// OpContains matches on a case-insensitive substring test.
	OpContains Operator = "contains"
	// OpIn matches when the answer appears in a list-valued condition.
	OpIn Operator = "in"
)

// Condition compares the answer of a referenced question against a
// configured value. Evaluation never fails: a missing answer or an
// unknown operator simply does not match.
type Condition struct {
	// Source is the ID of the question whose answer is inspected.
	Source   string   `json:"source" yaml:"source"`
	Operator Operator `json:"operator" yaml:"operator"`
	Value    Value    `json:"value" yaml:"value"`
}

// BranchRule is one entry of a question's ordered if/else-if chain.
type BranchRule struct {
	ID        string    `json:"id" yaml:"id"`
	Condition Condition `json:"condition" yaml:"condition"`

	// Target is where a matching rule sends the flow: a question ID or
	// the explicit end marker.
	Target NextRef `json:"target" yaml:"target"`
}

// Value is a condition's comparison value: either a single string or a
// list of strings. The two shapes are distinguished because the "in"
// operator requires a list and the others expect a scalar.
type Value struct {
	scalar string
	list   []string
	isList bool
}

// ScalarValue builds a single-string condition value.
func ScalarValue(s string) Value {
	return Value{scalar: s}
}

// ListValue builds a list condition value.
func ListValue(items ...string) Value {
	out := make([]string, len(items))
	copy(out, items)
	return Value{list: out, isList: true}
}

// IsList reports whether the value is the list shape.
func (v Value) IsList() bool { return v.isList }

// Scalar returns the single-string form. The bool is false for lists.
func (v Value) Scalar() (string, bool) {
	if v.isList {
		return "", false
	}
	return v.scalar, true
}

// List returns the list form. The bool is false for scalars.
func (v Value) List() ([]string, bool) {
	if !v.isList {
		return nil, false
	}
	return v.list, true
}

// MarshalJSON encodes the scalar shape as a string and the list shape
// as an array of strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isList {
		if v.list == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.list)
	}
	return json.Marshal(v.scalar)
}

// UnmarshalJSON accepts a string, number, boolean, or an array of such.
// Non-string primitives are canonicalized to their string form so that
// evaluation only ever compares strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("condition value: %w", err)
	}
	*v = valueFromAny(raw)
	return nil
}

// MarshalYAML mirrors the JSON encoding.
func (v Value) MarshalYAML() (any, error) {
	if v.isList {
		return v.list, nil
	}
	return v.scalar, nil
}

// UnmarshalYAML mirrors the JSON decoding.
func (v *Value) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return fmt.Errorf("condition value: %w", err)
	}
	*v = valueFromAny(raw)
	return nil
}

// valueFromAny canonicalizes an arbitrary decoded value into the
// scalar-or-list shape. It is shared by the JSON/YAML codecs and the
// mapstructure decode hook in the file loader.
func valueFromAny(raw any) Value {
	switch t := raw.(type) {
	case nil:
		return Value{}
	case []any:
		items := make([]string, 0, len(t))
		for _, el := range t {
			items = append(items, CanonicalString(el))
		}
		return Value{list: items, isList: true}
	case []string:
		return ListValue(t...)
	default:
		return Value{scalar: CanonicalString(raw)}
	}
}

// ValueFromAny is the exported entry point for loaders that decode
// generic documents.
func ValueFromAny(raw any) Value {
	return valueFromAny(raw)
}
