// Package validator reports authoring mistakes in a form's branching
// structure. The runtime never needs these checks — it degrades
// gracefully around every issue found here — so the report is purely
// advisory, surfaced by the `trailhead validate` command.
package validator

import (
	"fmt"
	"strings"

	"github.com/fieldset/trailhead/pkg/domain"
)

// Severity grades an issue. Errors describe references that resolve to
// nothing at traversal time; warnings describe convention violations
// the engine tolerates (backward jumps, unreachable questions).
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single finding, addressed to the authoring side.
type Issue struct {
	Severity   Severity
	QuestionID string
	RuleID     string
	Message    string
}

func (i Issue) String() string {
	loc := i.QuestionID
	if i.RuleID != "" {
		loc += "/" + i.RuleID
	}
	return fmt.Sprintf("[%s] %s: %s", i.Severity, loc, i.Message)
}

// Report collects the findings for one form.
type Report struct {
	Issues []Issue
}

// HasErrors reports whether any finding has error severity.
func (r Report) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r Report) String() string {
	if len(r.Issues) == 0 {
		return "no issues found"
	}
	lines := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		lines[i] = issue.String()
	}
	return strings.Join(lines, "\n")
}

func (r *Report) add(sev Severity, questionID, ruleID, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Severity:   sev,
		QuestionID: questionID,
		RuleID:     ruleID,
		Message:    fmt.Sprintf(format, args...),
	})
}

// Check inspects a question list and reports referential and
// conventional problems.
func Check(questions []domain.Question) Report {
	var report Report

	index := make(map[string]int, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			report.add(SeverityError, fmt.Sprintf("#%d", i), "", "question has no ID")
			continue
		}
		if _, dup := index[q.ID]; dup {
			report.add(SeverityError, q.ID, "", "duplicate question ID")
			continue
		}
		index[q.ID] = i
	}

	for i, q := range questions {
		checkDefaultNext(&report, q, i, index)
		for _, rule := range q.Rules {
			checkRule(&report, q, rule, i, index, questions)
		}
	}

	checkReachability(&report, questions, index)
	return report
}

func checkDefaultNext(report *Report, q domain.Question, pos int, index map[string]int) {
	target, ok := q.DefaultNext.Target()
	if !ok {
		return
	}
	ti, exists := index[target]
	if !exists {
		report.add(SeverityError, q.ID, "", "default next points at unknown question %q", target)
		return
	}
	if ti <= pos {
		report.add(SeverityWarning, q.ID, "", "default next %q does not follow the question", target)
	}
}

func checkRule(report *Report, q domain.Question, rule domain.BranchRule, pos int, index map[string]int, questions []domain.Question) {
	// Target side.
	if !rule.Target.IsConfigured() {
		report.add(SeverityWarning, q.ID, rule.ID, "rule has no target and is skipped at runtime")
	} else if target, ok := rule.Target.Target(); ok {
		ti, exists := index[target]
		switch {
		case !exists:
			report.add(SeverityError, q.ID, rule.ID, "rule targets unknown question %q", target)
		case ti <= pos:
			report.add(SeverityWarning, q.ID, rule.ID, "rule target %q does not follow the question", target)
		}
	}

	// Condition side.
	src := rule.Condition.Source
	if src == "" {
		report.add(SeverityWarning, q.ID, rule.ID, "condition has no source question and never matches")
		return
	}
	si, exists := index[src]
	if !exists {
		report.add(SeverityError, q.ID, rule.ID, "condition references unknown question %q", src)
		return
	}
	// Branching on the owning question's own answer is the common
	// case; only a source asked later is suspicious.
	if si > pos {
		report.add(SeverityWarning, q.ID, rule.ID, "condition source %q is asked after this question", src)
	}
	if !questions[si].Type.Conditionable() {
		report.add(SeverityWarning, q.ID, rule.ID, "condition source %q has a free-form type", src)
	}
	if rule.Condition.Operator == domain.OpIn && !rule.Condition.Value.IsList() {
		report.add(SeverityWarning, q.ID, rule.ID, "operator \"in\" needs a list value and never matches")
	}
}

// checkReachability walks every edge the resolver could take (rule
// targets, explicit defaults, and the implicit list-order fallback)
// from the first question and reports what cannot be reached.
func checkReachability(report *Report, questions []domain.Question, index map[string]int) {
	if len(questions) == 0 {
		return
	}

	reachable := make(map[string]bool, len(questions))
	queue := []string{questions[0].ID}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if reachable[id] {
			continue
		}
		reachable[id] = true

		pos, ok := index[id]
		if !ok {
			continue
		}
		q := questions[pos]

		push := func(ref domain.NextRef) {
			if target, ok := ref.Target(); ok && !reachable[target] {
				queue = append(queue, target)
			}
		}
		for _, rule := range q.Rules {
			push(rule.Target)
		}
		if q.DefaultNext.IsConfigured() {
			push(q.DefaultNext)
		} else if pos+1 < len(questions) {
			push(domain.GoTo(questions[pos+1].ID))
		}
	}

	for _, q := range questions {
		if q.ID != "" && !reachable[q.ID] {
			report.add(SeverityWarning, q.ID, "", "question is unreachable from the start")
		}
	}
}
