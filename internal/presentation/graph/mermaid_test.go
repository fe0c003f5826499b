package graph_test

import (
	"strings"
	"testing"

	"github.com/fieldset/trailhead/internal/presentation/graph"
	"github.com/fieldset/trailhead/pkg/domain"
	"github.com/sebdah/goldie/v2"
)

func fixtureForm() []domain.Question {
	return []domain.Question{
		{
			ID:      "q1",
			Type:    domain.TypeDropdown,
			Title:   "Favorite color?",
			Options: []string{"Red", "Blue"},
			Rules: []domain.BranchRule{{
				ID: "r1",
				Condition: domain.Condition{
					Source:   "q1",
					Operator: domain.OpEquals,
					Value:    domain.ScalarValue("Red"),
				},
				Target: domain.GoTo("q3"),
			}},
		},
		{ID: "q2", Type: domain.TypeShortText, Title: "Why blue?"},
		{ID: "q3", Type: domain.TypeRating, Title: "Rate us", DefaultNext: domain.End},
	}
}

func TestGenerateMermaid_Golden(t *testing.T) {
	out := graph.GenerateMermaid(fixtureForm(), nil)

	g := goldie.New(t)
	g.Assert(t, "branching_form", []byte(out))
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	out := graph.GenerateMermaid(fixtureForm(), &graph.Overlay{
		AnsweredIDs: []string{"q1", "q1"},
		CurrentID:   "q3",
	})

	if strings.Count(out, "class q1 answered;") != 1 {
		t.Error("answered overlay must be deduplicated")
	}
	if !strings.Contains(out, "class q3 current;") {
		t.Error("missing current overlay")
	}
}

func TestGenerateMermaid_SanitizesIDs(t *testing.T) {
	out := graph.GenerateMermaid([]domain.Question{
		{ID: "intro/welcome-1", Type: domain.TypeShortText, Title: `Say "hi"`},
	}, nil)

	if !strings.Contains(out, "intro_welcome_1") {
		t.Errorf("expected sanitized node ID, got:\n%s", out)
	}
	if strings.Contains(out, `"Say "hi""`) {
		t.Error("labels must not contain raw double quotes")
	}
}
