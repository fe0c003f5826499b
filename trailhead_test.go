package trailhead_test

import (
	"errors"
	"testing"

	"github.com/fieldset/trailhead"
	"github.com/fieldset/trailhead/pkg/adapters/memory"
	"github.com/fieldset/trailhead/pkg/domain"
	"github.com/fieldset/trailhead/pkg/dsl"
	"github.com/fieldset/trailhead/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func buildEngine(t *testing.T, opts ...trailhead.Option) *trailhead.Engine {
	t.Helper()

	loader, err := dsl.New(dsl.WithIDGenerator(dsl.SequentialIDs("rule"))).
		Add("color").Dropdown("Favorite color?", "Red", "Blue").
		Branch(dsl.Equals("color", "Red"), domain.GoTo("extra")).
		Done().
		Add("why").ShortText("Why blue?").Done().
		Add("extra").ShortText("Anything else?").Done().
		Build()
	if err != nil {
		t.Fatalf("failed to build form: %v", err)
	}

	eng, err := trailhead.New(loader, opts...)
	if err != nil {
		t.Fatalf("failed to init engine: %v", err)
	}
	return eng
}

func TestEngine_EndToEnd(t *testing.T) {
	eng := buildEngine(t)

	t.Run("red takes the branch", func(t *testing.T) {
		answers := domain.Answers{"color": "Red"}

		next := eng.Next("color", answers)
		if id, _ := next.Target(); id != "extra" {
			t.Fatalf("expected extra, got %s", next)
		}

		path := eng.Path(answers)
		if len(path) != 2 || path[0].ID != "color" || path[1].ID != "extra" {
			t.Fatalf("unexpected path: %v", pathIDs(path))
		}
	})

	t.Run("blue falls through linearly", func(t *testing.T) {
		answers := domain.Answers{"color": "Blue"}

		next := eng.Next("color", answers)
		if id, _ := next.Target(); id != "why" {
			t.Fatalf("expected why, got %s", next)
		}

		path := eng.Path(answers)
		if len(path) != 3 {
			t.Fatalf("unexpected path: %v", pathIDs(path))
		}
	})
}

func TestEngine_Progress(t *testing.T) {
	eng := buildEngine(t)
	answers := domain.Answers{"color": "Red"}

	pos, total := eng.Progress("extra", answers)
	if pos != 2 || total != 2 {
		t.Fatalf("expected 2/2, got %d/%d", pos, total)
	}

	// A question skipped by the branch is off the path.
	pos, total = eng.Progress("why", answers)
	if pos != 0 || total != 2 {
		t.Fatalf("expected 0/2, got %d/%d", pos, total)
	}
}

func TestEngine_AuthoringQueries(t *testing.T) {
	eng := buildEngine(t)

	if got := eng.ConditionSources("color"); len(got) != 0 {
		t.Fatalf("first question must have no sources, got %v", pathIDs(got))
	}
	if got := eng.ConditionSources("extra"); len(got) != 1 || got[0].ID != "color" {
		t.Fatalf("expected [color], got %v", pathIDs(got))
	}
	if got := eng.BranchTargets("color"); len(got) != 2 {
		t.Fatalf("expected two targets, got %v", pathIDs(got))
	}
	if got := eng.ValuesFor("color"); len(got) != 2 || got[0] != "Red" {
		t.Fatalf("unexpected values: %v", got)
	}
	if got := eng.ValuesFor("ghost"); got != nil {
		t.Fatalf("unknown question must yield nil, got %v", got)
	}
}

func TestEngine_QuestionLookup(t *testing.T) {
	eng := buildEngine(t)

	if _, err := eng.Question("color"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := eng.Question("ghost")
	if !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestEngine_MetricsWiring(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	eng := buildEngine(t, trailhead.WithMetrics(metrics))

	answers := domain.Answers{"color": "Red"}
	eng.Next("color", answers)
	eng.Next("color", answers)
	eng.Path(answers)

	if got := testutil.ToFloat64(metrics.Resolutions); got != 2 {
		t.Errorf("expected 2 resolutions, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.Projections); got != 1 {
		t.Errorf("expected 1 projection, got %v", got)
	}
}

func TestEngine_CycleMetric(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	loader := memory.NewLoader([]domain.Question{
		{ID: "a", Type: domain.TypeShortText, DefaultNext: domain.GoTo("b")},
		{ID: "b", Type: domain.TypeShortText, DefaultNext: domain.GoTo("a")},
	})
	eng, err := trailhead.New(loader, trailhead.WithMetrics(metrics))
	if err != nil {
		t.Fatalf("failed to init engine: %v", err)
	}

	eng.Path(domain.Answers{})
	if got := testutil.ToFloat64(metrics.Cycles); got != 1 {
		t.Errorf("expected 1 detected cycle, got %v", got)
	}
}

func TestNew_RequiresLoader(t *testing.T) {
	if _, err := trailhead.New(nil); err == nil {
		t.Fatal("expected error for nil loader")
	}
}

func TestNew_EmptyFormIsUsable(t *testing.T) {
	eng, err := trailhead.New(memory.NewLoader(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path := eng.Path(domain.Answers{}); len(path) != 0 {
		t.Fatalf("expected empty path, got %v", pathIDs(path))
	}
	if next := eng.Next("anything", domain.Answers{}); !next.IsEnd() {
		t.Fatalf("expected End, got %s", next)
	}
}

func pathIDs(qs []domain.Question) []string {
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}
