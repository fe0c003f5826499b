// Package graph renders a form's branching structure as a Mermaid
// flowchart for the `trailhead graph` command and the HTTP adapter.
package graph

import (
	"fmt"
	"strings"

	"github.com/fieldset/trailhead/pkg/domain"
)

// Overlay contains respondent state to visualize on the graph.
type Overlay struct {
	AnsweredIDs []string
	CurrentID   string
}

// GenerateMermaid produces Mermaid flowchart syntax for a question
// list. Node shapes follow the question type:
//   - choice-like: [/Parallelogram/]
//   - yes/no: {Diamond}
//   - rating and scale: ([Stadium])
//   - free-form: [Rectangle]
//
// Branch rules render as labeled solid edges, explicit defaults as
// unlabeled solid edges, and the implicit list-order fallback as a
// dotted edge. The explicit end shows up as one ((end)) sink. An
// optional overlay highlights answered questions and the current one.
func GenerateMermaid(questions []domain.Question, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	needsEnd := false

	for i, q := range questions {
		safeID := sanitizeID(q.ID)
		opener, closer := nodeShape(q.Type)

		title := q.Title
		if title == "" {
			title = q.ID
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(title), closer))

		for _, rule := range q.Rules {
			label := conditionLabel(rule.Condition)
			if target, ok := rule.Target.Target(); ok {
				sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, label, sanitizeID(target)))
			} else if rule.Target.IsEnd() {
				needsEnd = true
				sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> __end__\n", safeID, label))
			}
		}

		switch {
		case q.DefaultNext.IsEnd():
			needsEnd = true
			sb.WriteString(fmt.Sprintf("    %s --> __end__\n", safeID))
		case q.DefaultNext.IsConfigured():
			target, _ := q.DefaultNext.Target()
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", safeID, sanitizeID(target)))
		case i+1 < len(questions):
			// Implicit list-order fallback.
			sb.WriteString(fmt.Sprintf("    %s -.-> %s\n", safeID, sanitizeID(questions[i+1].ID)))
		}
	}

	if needsEnd {
		sb.WriteString("    __end__((\"end\"))\n")
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef answered fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.AnsweredIDs {
			safeID := sanitizeID(id)
			if safeID != "" && !seen[safeID] {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s answered;\n", safeID))
			}
		}
		if overlay.CurrentID != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeID(overlay.CurrentID)))
		}
	}

	return sb.String()
}

func nodeShape(t domain.QuestionType) (string, string) {
	switch {
	case t.Choice():
		return "[/", "/]"
	case t == domain.TypeYesNo:
		return "{", "}"
	case t == domain.TypeRating || t == domain.TypeScale:
		return "([", "])"
	default:
		return "[", "]"
	}
}

// conditionLabel summarizes a condition for an edge label, e.g.
// `color equals Red` or `nps in [9, 10]`.
func conditionLabel(c domain.Condition) string {
	var value string
	if list, ok := c.Value.List(); ok {
		value = "[" + strings.Join(list, ", ") + "]"
	} else {
		value, _ = c.Value.Scalar()
	}
	return escapeLabel(fmt.Sprintf("%s %s %s", c.Source, c.Operator, value))
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}

func sanitizeID(id string) string {
	replacer := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")
	return replacer.Replace(id)
}
