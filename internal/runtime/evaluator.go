package runtime

import (
	"slices"
	"strings"

	"github.com/fieldset/trailhead/pkg/domain"
)

// Evaluate reports whether the referenced answer satisfies the
// condition. It is a pure predicate: a question that was never
// answered fails every operator, and an operator the engine does not
// recognize fails too. No input makes it return an error.
func Evaluate(cond domain.Condition, answers domain.Answers) bool {
	ans, ok := answers.Lookup(cond.Source)
	if !ok {
		return false
	}

	switch cond.Operator {
	case domain.OpEquals:
		return matchesEquals(cond.Value, ans)
	case domain.OpNotEquals:
		// Negated membership/equality, not a blanket negation: for a
		// list answer this means "the value is not among the selected
		// entries".
		return !matchesEquals(cond.Value, ans)
	case domain.OpContains:
		return matchesContains(cond.Value, ans)
	case domain.OpIn:
		return matchesIn(cond.Value, ans)
	}
	return false
}

// matchesEquals is string equality for scalar answers and membership
// for list answers. A list-shaped condition value never matches here;
// that shape belongs to the "in" operator.
func matchesEquals(v domain.Value, ans domain.AnswerValue) bool {
	want, ok := v.Scalar()
	if !ok {
		return false
	}
	if ans.IsList() {
		return slices.Contains(ans.Values(), want)
	}
	return ans.Scalar() == want
}

// matchesContains is a case-insensitive substring test. For list
// answers any element may contain the value.
func matchesContains(v domain.Value, ans domain.AnswerValue) bool {
	want, ok := v.Scalar()
	if !ok {
		return false
	}
	needle := strings.ToLower(want)
	for _, el := range ans.Values() {
		if strings.Contains(strings.ToLower(el), needle) {
			return true
		}
	}
	return false
}

// matchesIn requires a list-shaped condition value and matches when
// any answer element (or the single scalar) appears in it.
func matchesIn(v domain.Value, ans domain.AnswerValue) bool {
	list, ok := v.List()
	if !ok {
		return false
	}
	for _, el := range ans.Values() {
		if slices.Contains(list, el) {
			return true
		}
	}
	return false
}
