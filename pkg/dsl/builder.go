package dsl

import (
	"fmt"

	"github.com/fieldset/trailhead/pkg/adapters/memory"
	"github.com/fieldset/trailhead/pkg/domain"
	"github.com/google/uuid"
)

// IDGenerator mints IDs for new branch rules. Injected so tests get
// deterministic output instead of ambient randomness.
type IDGenerator func() string

// SequentialIDs returns a deterministic generator producing
// "<prefix>-1", "<prefix>-2", ...
func SequentialIDs(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// Builder accumulates questions in authoring order.
type Builder struct {
	order []*QuestionBuilder
	byID  map[string]*QuestionBuilder
	genID IDGenerator
}

// Option defines a functional option for the builder.
type Option func(*Builder)

// WithIDGenerator replaces the default UUID rule-ID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(b *Builder) {
		b.genID = gen
	}
}

// New creates an empty form builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		byID:  make(map[string]*QuestionBuilder),
		genID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add appends a question with the given ID, or returns the existing
// builder when the ID was added before.
func (b *Builder) Add(id string) *QuestionBuilder {
	if qb, ok := b.byID[id]; ok {
		return qb
	}
	qb := &QuestionBuilder{
		question: domain.Question{ID: id},
		builder:  b,
	}
	b.order = append(b.order, qb)
	b.byID[id] = qb
	return qb
}

// Questions returns the built question list in authoring order.
func (b *Builder) Questions() []domain.Question {
	out := make([]domain.Question, 0, len(b.order))
	for _, qb := range b.order {
		out = append(out, qb.question)
	}
	return out
}

// Build compiles the form into a memory loader, rejecting fixtures
// with missing or duplicate IDs.
func (b *Builder) Build() (*memory.Loader, error) {
	loader := memory.NewLoader(b.Questions())
	if err := loader.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build form: %w", err)
	}
	return loader, nil
}

// Equals builds an equals condition against a question's answer.
func Equals(source, value string) domain.Condition {
	return domain.Condition{Source: source, Operator: domain.OpEquals, Value: domain.ScalarValue(value)}
}

// NotEquals builds a not_equals condition.
func NotEquals(source, value string) domain.Condition {
	return domain.Condition{Source: source, Operator: domain.OpNotEquals, Value: domain.ScalarValue(value)}
}

// Contains builds a case-insensitive substring condition.
func Contains(source, value string) domain.Condition {
	return domain.Condition{Source: source, Operator: domain.OpContains, Value: domain.ScalarValue(value)}
}

// In builds a membership condition over a list of values.
func In(source string, values ...string) domain.Condition {
	return domain.Condition{Source: source, Operator: domain.OpIn, Value: domain.ListValue(values...)}
}
