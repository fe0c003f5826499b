package runtime_test

import (
	"testing"

	"github.com/fieldset/trailhead/internal/runtime"
	"github.com/fieldset/trailhead/pkg/domain"
)

func surveyForm() []domain.Question {
	return []domain.Question{
		{ID: "q1", Type: domain.TypeDropdown, Options: []string{"Red", "Blue"}},
		{ID: "q2", Type: domain.TypeLongText},
		{ID: "q3", Type: domain.TypeRating},
		{ID: "q4", Type: domain.TypeShortText},
	}
}

func TestConditionSources(t *testing.T) {
	eng := runtime.NewEngine(surveyForm())

	t.Run("first question has none", func(t *testing.T) {
		q, _ := eng.Question("q1")
		if got := eng.ConditionSources(q); len(got) != 0 {
			t.Fatalf("expected no sources, got %v", pathIDs(got))
		}
	})

	t.Run("free-form types are filtered out", func(t *testing.T) {
		q, _ := eng.Question("q4")
		got := pathIDs(eng.ConditionSources(q))
		if len(got) != 2 || got[0] != "q1" || got[1] != "q3" {
			t.Fatalf("expected [q1 q3], got %v", got)
		}
	})

	t.Run("unknown question has none", func(t *testing.T) {
		if got := eng.ConditionSources(domain.Question{ID: "ghost"}); len(got) != 0 {
			t.Fatalf("expected no sources, got %v", pathIDs(got))
		}
	})
}

func TestBranchTargets(t *testing.T) {
	eng := runtime.NewEngine(surveyForm())

	t.Run("everything after, any type", func(t *testing.T) {
		q, _ := eng.Question("q2")
		got := pathIDs(eng.BranchTargets(q))
		if len(got) != 2 || got[0] != "q3" || got[1] != "q4" {
			t.Fatalf("expected [q3 q4], got %v", got)
		}
	})

	t.Run("last question has none", func(t *testing.T) {
		q, _ := eng.Question("q4")
		if got := eng.BranchTargets(q); len(got) != 0 {
			t.Fatalf("expected no targets, got %v", pathIDs(got))
		}
	})
}

func TestValuesFor(t *testing.T) {
	equal := func(t *testing.T, got, want []string) {
		t.Helper()
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	}

	t.Run("choice options", func(t *testing.T) {
		q := domain.Question{Type: domain.TypeDropdown, Options: []string{"Red", "Blue"}}
		equal(t, runtime.ValuesFor(q), []string{"Red", "Blue"})
	})

	t.Run("yes/no pair", func(t *testing.T) {
		equal(t, runtime.ValuesFor(domain.Question{Type: domain.TypeYesNo}), []string{"Yes", "No"})
	})

	t.Run("configured rating range", func(t *testing.T) {
		q := domain.Question{Type: domain.TypeRating, Min: 1, Max: 5}
		equal(t, runtime.ValuesFor(q), []string{"1", "2", "3", "4", "5"})
	})

	t.Run("scale defaults to 1..10", func(t *testing.T) {
		got := runtime.ValuesFor(domain.Question{Type: domain.TypeScale})
		if len(got) != 10 || got[0] != "1" || got[9] != "10" {
			t.Fatalf("expected 1..10, got %v", got)
		}
	})

	t.Run("rating defaults to 1..5", func(t *testing.T) {
		equal(t, runtime.ValuesFor(domain.Question{Type: domain.TypeRating}), []string{"1", "2", "3", "4", "5"})
	})

	t.Run("inverted bounds yield nothing", func(t *testing.T) {
		q := domain.Question{Type: domain.TypeScale, Min: 7, Max: 3}
		if got := runtime.ValuesFor(q); len(got) != 0 {
			t.Fatalf("expected empty, got %v", got)
		}
	})

	t.Run("free-form types yield nothing", func(t *testing.T) {
		if got := runtime.ValuesFor(domain.Question{Type: domain.TypeShortText}); len(got) != 0 {
			t.Fatalf("expected empty, got %v", got)
		}
	})
}
