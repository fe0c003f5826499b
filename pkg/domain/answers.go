package domain

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Answers maps question IDs to collected answers. Values are scalar
// primitives or lists of scalar primitives, exactly as a form player
// hands them over (typically decoded JSON). A missing key and an
// explicit nil entry both mean "no answer".
type Answers map[string]any

// AnswerValue is the canonical view of one answer: its elements as
// strings, plus whether the original value was a list. The distinction
// matters for equals/not_equals, which switch between string equality
// and membership depending on the answer shape.
type AnswerValue struct {
	values []string
	isList bool
}

// IsList reports whether the underlying answer was list-shaped.
func (v AnswerValue) IsList() bool { return v.isList }

// Values returns the canonical string elements. A scalar answer yields
// exactly one element.
func (v AnswerValue) Values() []string { return v.values }

// Scalar returns the single canonical string of a scalar answer, or
// the empty string for lists.
func (v AnswerValue) Scalar() string {
	if v.isList || len(v.values) == 0 {
		return ""
	}
	return v.values[0]
}

// Lookup canonicalizes the answer for a question ID. The bool is false
// when the question was never answered (missing key or nil value).
func (a Answers) Lookup(id string) (AnswerValue, bool) {
	raw, ok := a[id]
	if !ok || raw == nil {
		return AnswerValue{}, false
	}
	return canonicalAnswer(raw), true
}

func canonicalAnswer(raw any) AnswerValue {
	switch t := raw.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, el := range t {
			out = append(out, CanonicalString(el))
		}
		return AnswerValue{values: out, isList: true}
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return AnswerValue{values: out, isList: true}
	}

	// Uncommon slice kinds ([]int, []float64, ...) still count as
	// list answers.
	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Slice {
		out := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, CanonicalString(rv.Index(i).Interface()))
		}
		return AnswerValue{values: out, isList: true}
	}

	return AnswerValue{values: []string{CanonicalString(raw)}}
}

// CanonicalString pins down the string form every comparison uses.
// The branching model compares strings only, so each primitive gets
// exactly one representation:
//
//	string  -> unchanged
//	bool    -> "true" / "false"
//	integer -> base-10 digits
//	float   -> shortest decimal form ("5", "5.5")
//
// Anything else falls back to fmt's %v.
func CanonicalString(raw any) string {
	switch t := raw.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", raw)
	}
}
