package dsl

import "github.com/fieldset/trailhead/pkg/domain"

// QuestionBuilder provides a fluent API for configuring one question.
type QuestionBuilder struct {
	question domain.Question
	builder  *Builder
}

// Dropdown marks the question as a single-select dropdown.
func (q *QuestionBuilder) Dropdown(title string, options ...string) *QuestionBuilder {
	q.question.Type = domain.TypeDropdown
	q.question.Title = title
	q.question.Options = options
	return q
}

// MultipleChoice marks the question as a radio group.
func (q *QuestionBuilder) MultipleChoice(title string, options ...string) *QuestionBuilder {
	q.question.Type = domain.TypeMultipleChoice
	q.question.Title = title
	q.question.Options = options
	return q
}

// Checkboxes marks the question as multi-select; its answers are lists.
func (q *QuestionBuilder) Checkboxes(title string, options ...string) *QuestionBuilder {
	q.question.Type = domain.TypeCheckboxes
	q.question.Title = title
	q.question.Options = options
	return q
}

// YesNo marks the question as a boolean-like Yes/No.
func (q *QuestionBuilder) YesNo(title string) *QuestionBuilder {
	q.question.Type = domain.TypeYesNo
	q.question.Title = title
	return q
}

// Rating marks the question as a 1..5 rating (configurable via Range).
func (q *QuestionBuilder) Rating(title string) *QuestionBuilder {
	q.question.Type = domain.TypeRating
	q.question.Title = title
	return q
}

// Scale marks the question as a 1..10 scale (configurable via Range).
func (q *QuestionBuilder) Scale(title string) *QuestionBuilder {
	q.question.Type = domain.TypeScale
	q.question.Title = title
	return q
}

// ShortText marks the question as a single-line free-form input.
func (q *QuestionBuilder) ShortText(title string) *QuestionBuilder {
	q.question.Type = domain.TypeShortText
	q.question.Title = title
	return q
}

// LongText marks the question as a multi-line free-form input.
func (q *QuestionBuilder) LongText(title string) *QuestionBuilder {
	q.question.Type = domain.TypeLongText
	q.question.Title = title
	return q
}

// Range overrides the bounds of a rating or scale question.
func (q *QuestionBuilder) Range(min, max int) *QuestionBuilder {
	q.question.Min = min
	q.question.Max = max
	return q
}

// Branch appends a rule to the question's if/else-if chain. The rule
// ID comes from the builder's generator.
func (q *QuestionBuilder) Branch(cond domain.Condition, target domain.NextRef) *QuestionBuilder {
	q.question.Rules = append(q.question.Rules, domain.BranchRule{
		ID:        q.builder.genID(),
		Condition: cond,
		Target:    target,
	})
	return q
}

// Default sets the explicit default-next reference. Without it the
// resolver falls back to list order.
func (q *QuestionBuilder) Default(ref domain.NextRef) *QuestionBuilder {
	q.question.DefaultNext = ref
	return q
}

// EndsForm marks the question as an explicit end of the flow when no
// rule matches.
func (q *QuestionBuilder) EndsForm() *QuestionBuilder {
	q.question.DefaultNext = domain.End
	return q
}

// Done returns to the form builder for chaining.
func (q *QuestionBuilder) Done() *Builder {
	return q.builder
}
