package runtime_test

import (
	"testing"

	"github.com/fieldset/trailhead/internal/runtime"
	"github.com/fieldset/trailhead/pkg/domain"
)

func cond(source string, op domain.Operator, v domain.Value) domain.Condition {
	return domain.Condition{Source: source, Operator: op, Value: v}
}

func TestEvaluate_MissingAnswer(t *testing.T) {
	answers := domain.Answers{"other": "Red"}

	ops := []domain.Operator{domain.OpEquals, domain.OpNotEquals, domain.OpContains, domain.OpIn}
	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			c := cond("q1", op, domain.ScalarValue("Red"))
			if op == domain.OpIn {
				c.Value = domain.ListValue("Red")
			}
			if runtime.Evaluate(c, answers) {
				t.Errorf("expected false for %s with no answer", op)
			}
		})
	}

	t.Run("explicit nil counts as no answer", func(t *testing.T) {
		c := cond("q1", domain.OpNotEquals, domain.ScalarValue("Red"))
		if runtime.Evaluate(c, domain.Answers{"q1": nil}) {
			t.Error("nil answer should fail even not_equals")
		}
	})
}

func TestEvaluate_Equals(t *testing.T) {
	t.Run("scalar answer", func(t *testing.T) {
		answers := domain.Answers{"q1": "Red"}
		if !runtime.Evaluate(cond("q1", domain.OpEquals, domain.ScalarValue("Red")), answers) {
			t.Error("expected Red == Red")
		}
		if runtime.Evaluate(cond("q1", domain.OpEquals, domain.ScalarValue("Blue")), answers) {
			t.Error("expected Red != Blue")
		}
	})

	t.Run("list answer is a membership test", func(t *testing.T) {
		answers := domain.Answers{"q1": []any{"Red", "Green"}}
		if !runtime.Evaluate(cond("q1", domain.OpEquals, domain.ScalarValue("Green")), answers) {
			t.Error("expected member Green to match")
		}
		if runtime.Evaluate(cond("q1", domain.OpEquals, domain.ScalarValue("Blue")), answers) {
			t.Error("expected non-member Blue not to match")
		}
	})

	t.Run("numeric answers compare canonically", func(t *testing.T) {
		answers := domain.Answers{"q1": float64(5)} // decoded JSON number
		if !runtime.Evaluate(cond("q1", domain.OpEquals, domain.ScalarValue("5")), answers) {
			t.Error(`expected 5 to equal "5"`)
		}
	})
}

func TestEvaluate_NotEquals_ComplementsEquals(t *testing.T) {
	cases := []struct {
		name   string
		answer any
	}{
		{"scalar", "Red"},
		{"list", []any{"Red", "Green"}},
	}
	values := []string{"Red", "Green", "Blue", ""}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			answers := domain.Answers{"q1": tc.answer}
			for _, v := range values {
				eq := runtime.Evaluate(cond("q1", domain.OpEquals, domain.ScalarValue(v)), answers)
				ne := runtime.Evaluate(cond("q1", domain.OpNotEquals, domain.ScalarValue(v)), answers)
				if eq == ne {
					t.Errorf("value %q: equals=%v and not_equals=%v must be complements", v, eq, ne)
				}
			}
		})
	}
}

func TestEvaluate_NotEquals_ListIsNegatedMembership(t *testing.T) {
	// A two-element selection is "not equal" to either single member.
	// The semantics are negated membership, not full-list comparison.
	answers := domain.Answers{"q1": []any{"Red", "Green"}}
	if runtime.Evaluate(cond("q1", domain.OpNotEquals, domain.ScalarValue("Red")), answers) {
		t.Error("not_equals must be false for a selected member")
	}
	if !runtime.Evaluate(cond("q1", domain.OpNotEquals, domain.ScalarValue("Blue")), answers) {
		t.Error("not_equals must be true for a non-member")
	}
}

func TestEvaluate_Contains(t *testing.T) {
	t.Run("case-insensitive substring", func(t *testing.T) {
		answers := domain.Answers{"q1": "XAB"}
		if !runtime.Evaluate(cond("q1", domain.OpContains, domain.ScalarValue("ab")), answers) {
			t.Error(`expected "XAB" to contain "ab"`)
		}
	})

	t.Run("any list element may contain the value", func(t *testing.T) {
		answers := domain.Answers{"q1": []any{"Alpha", "Bravo"}}
		if !runtime.Evaluate(cond("q1", domain.OpContains, domain.ScalarValue("RAV")), answers) {
			t.Error(`expected "Bravo" to contain "RAV"`)
		}
		if runtime.Evaluate(cond("q1", domain.OpContains, domain.ScalarValue("zulu")), answers) {
			t.Error("expected no element to contain zulu")
		}
	})
}

func TestEvaluate_In(t *testing.T) {
	t.Run("requires a list condition value", func(t *testing.T) {
		answers := domain.Answers{"q1": "x"}
		if runtime.Evaluate(cond("q1", domain.OpIn, domain.ScalarValue("x")), answers) {
			t.Error("scalar condition value must fail the in operator")
		}
	})

	t.Run("scalar answer membership", func(t *testing.T) {
		answers := domain.Answers{"q1": "Blue"}
		if !runtime.Evaluate(cond("q1", domain.OpIn, domain.ListValue("Red", "Blue")), answers) {
			t.Error("expected Blue in [Red Blue]")
		}
		if runtime.Evaluate(cond("q1", domain.OpIn, domain.ListValue("Red", "Green")), answers) {
			t.Error("expected Blue not in [Red Green]")
		}
	})

	t.Run("list answer intersects", func(t *testing.T) {
		answers := domain.Answers{"q1": []any{"Cyan", "Blue"}}
		if !runtime.Evaluate(cond("q1", domain.OpIn, domain.ListValue("Red", "Blue")), answers) {
			t.Error("expected intersection on Blue")
		}
	})
}

func TestEvaluate_UnknownOperator(t *testing.T) {
	answers := domain.Answers{"q1": "Red"}
	if runtime.Evaluate(cond("q1", "greater_than", domain.ScalarValue("Red")), answers) {
		t.Error("unrecognized operator must evaluate false")
	}
}
