package runtime

import (
	"strconv"

	"github.com/fieldset/trailhead/pkg/domain"
)

// ConditionSources returns the questions that may serve as condition
// sources for q: everything strictly before its position whose type
// has a small enumerable answer space. Empty when q is first or not
// part of the form.
func (e *Engine) ConditionSources(q domain.Question) []domain.Question {
	i, ok := e.index[q.ID]
	if !ok {
		return nil
	}
	out := make([]domain.Question, 0, i)
	for _, prev := range e.questions[:i] {
		if prev.Type.Conditionable() {
			out = append(out, prev)
		}
	}
	return out
}

// BranchTargets returns the questions a rule on q may target:
// everything strictly after its position, regardless of type. Empty
// when q is last or not part of the form.
func (e *Engine) BranchTargets(q domain.Question) []domain.Question {
	i, ok := e.index[q.ID]
	if !ok {
		return nil
	}
	out := make([]domain.Question, 0, len(e.questions)-i-1)
	out = append(out, e.questions[i+1:]...)
	return out
}

// ValuesFor enumerates the discrete answers a question can produce,
// for use as condition values in an authoring UI:
//
//   - choice-like types: the configured option list;
//   - yes/no: the fixed pair "Yes", "No";
//   - rating and scale: the inclusive integer range from Min to Max
//     as strings, defaulting to 1..5 and 1..10 when unconfigured;
//   - free-form types: nothing.
func ValuesFor(q domain.Question) []string {
	switch q.Type {
	case domain.TypeDropdown, domain.TypeMultipleChoice, domain.TypeCheckboxes:
		out := make([]string, len(q.Options))
		copy(out, q.Options)
		return out
	case domain.TypeYesNo:
		return []string{"Yes", "No"}
	case domain.TypeRating:
		return scaleValues(q.Min, q.Max, domain.RatingDefaultMin, domain.RatingDefaultMax)
	case domain.TypeScale:
		return scaleValues(q.Min, q.Max, domain.ScaleDefaultMin, domain.ScaleDefaultMax)
	}
	return nil
}

func scaleValues(min, max, defMin, defMax int) []string {
	if min == 0 {
		min = defMin
	}
	if max == 0 {
		max = defMax
	}
	if max < min {
		return nil
	}
	out := make([]string, 0, max-min+1)
	for v := min; v <= max; v++ {
		out = append(out, strconv.Itoa(v))
	}
	return out
}
