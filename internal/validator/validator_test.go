package validator_test

import (
	"testing"

	"github.com/fieldset/trailhead/internal/validator"
	"github.com/fieldset/trailhead/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rule(id, source string, op domain.Operator, value domain.Value, target domain.NextRef) domain.BranchRule {
	return domain.BranchRule{
		ID:        id,
		Condition: domain.Condition{Source: source, Operator: op, Value: value},
		Target:    target,
	}
}

func TestCheck_CleanForm(t *testing.T) {
	report := validator.Check([]domain.Question{
		{
			ID: "q1", Type: domain.TypeDropdown, Options: []string{"Red", "Blue"},
			Rules: []domain.BranchRule{
				rule("r1", "q1", domain.OpEquals, domain.ScalarValue("Red"), domain.GoTo("q3")),
			},
		},
		{ID: "q2", Type: domain.TypeShortText},
		{ID: "q3", Type: domain.TypeShortText, DefaultNext: domain.End},
	})

	assert.Empty(t, report.Issues)
	assert.False(t, report.HasErrors())
	assert.Equal(t, "no issues found", report.String())
}

func TestCheck_DanglingReferences(t *testing.T) {
	report := validator.Check([]domain.Question{
		{
			ID: "q1", Type: domain.TypeDropdown,
			Rules: []domain.BranchRule{
				rule("r1", "ghost", domain.OpEquals, domain.ScalarValue("x"), domain.GoTo("nowhere")),
			},
			DefaultNext: domain.GoTo("also-nowhere"),
		},
	})

	require.True(t, report.HasErrors())
	assert.Len(t, report.Issues, 3)
}

func TestCheck_ConventionWarnings(t *testing.T) {
	questions := []domain.Question{
		{ID: "q1", Type: domain.TypeLongText},
		{
			ID: "q2", Type: domain.TypeDropdown,
			Rules: []domain.BranchRule{
				// Source is free-form, target points backward.
				rule("r1", "q1", domain.OpEquals, domain.ScalarValue("x"), domain.GoTo("q1")),
				// "in" with a scalar value can never match.
				rule("r2", "q2", domain.OpIn, domain.ScalarValue("x"), domain.GoTo("q3")),
			},
		},
		{ID: "q3", Type: domain.TypeShortText},
	}

	report := validator.Check(questions)
	assert.False(t, report.HasErrors())

	var messages []string
	for _, issue := range report.Issues {
		require.Equal(t, validator.SeverityWarning, issue.Severity)
		messages = append(messages, issue.Message)
	}
	assert.Contains(t, messages, `condition source "q1" has a free-form type`)
	assert.Contains(t, messages, `rule target "q1" does not follow the question`)
	assert.Contains(t, messages, `operator "in" needs a list value and never matches`)
	// r2 conditions on its own question, which is the common case and
	// must not warn.
	for _, m := range messages {
		assert.NotContains(t, m, `source "q2"`)
	}
}

func TestCheck_Unreachable(t *testing.T) {
	report := validator.Check([]domain.Question{
		{ID: "q1", Type: domain.TypeShortText, DefaultNext: domain.End},
		{ID: "orphan", Type: domain.TypeShortText},
	})

	require.Len(t, report.Issues, 1)
	assert.Equal(t, "orphan", report.Issues[0].QuestionID)
	assert.Equal(t, validator.SeverityWarning, report.Issues[0].Severity)
}

func TestCheck_DuplicateIDs(t *testing.T) {
	report := validator.Check([]domain.Question{
		{ID: "q1", Type: domain.TypeShortText},
		{ID: "q1", Type: domain.TypeShortText},
	})
	require.True(t, report.HasErrors())
}
